package conf

import "time"

// DefaultSource points to the published materials table.
const DefaultSource = "https://gist.githubusercontent.com/sambozek/5150267fd7dff4249ce789ba60ddd905/raw/b695e8869d94e64830b12003954471d11420c232/materials.csv"

var (
	// DatasetSource represents location (URL or path) of the materials CSV.
	DatasetSource = NewStringFlag("source", "URL or file path of the materials CSV", DefaultSource)
	// FetchTimeout bounds a single dataset download.
	FetchTimeout = NewDurationFlag("fetch_timeout", "Timeout of dataset download", 30*time.Second)
)
