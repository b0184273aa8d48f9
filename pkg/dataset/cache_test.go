package dataset

import (
	"context"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/polyspectra/propview/pkg/dataset/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCacheLoadsOnce(t *testing.T) {
	logrus.SetLevel(logrus.ErrorLevel)

	source := new(mocks.Source)
	source.On("Location").Return("mocked")
	source.On("Open", mock.Anything).Return(ioutil.NopCloser(strings.NewReader(testCSV)), nil).Once()

	cache := NewCache(source, Options{})
	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	second, err := cache.Get(context.Background())
	require.NoError(t, err)

	assert.True(t, first == second)
	assert.Equal(t, "mocked", cache.Location())
	source.AssertNumberOfCalls(t, "Open", 1)
	source.AssertExpectations(t)
}

func TestCacheKeepsFailure(t *testing.T) {
	logrus.SetLevel(logrus.ErrorLevel)

	source := new(mocks.Source)
	source.On("Location").Return("mocked")
	source.On("Open", mock.Anything).Return(nil, errors.New("unreachable")).Once()

	cache := NewCache(source, Options{})
	_, err := cache.Get(context.Background())
	assert.True(t, IsLoadError(err))

	table, err := cache.Get(context.Background())
	assert.Nil(t, table)
	assert.True(t, IsLoadError(err))
	source.AssertNumberOfCalls(t, "Open", 1)
}
