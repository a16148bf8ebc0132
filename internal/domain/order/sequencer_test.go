package order_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmo/storefront-backend/internal/domain/order"
)

type fakeNumberSource struct {
	numbers []string
	err     error
}

func (f *fakeNumberSource) OrderNumbers(ctx context.Context) ([]string, error) {
	return f.numbers, f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestNext_ScansStoreForMax(t *testing.T) {
	source := &fakeNumberSource{numbers: []string{"0003", "0017", "0009"}}
	seq := order.NewStoreSequencer(source, quietLogger())

	number, err := seq.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0018", number)
}

func TestNext_EmptyStoreStartsAtOne(t *testing.T) {
	seq := order.NewStoreSequencer(&fakeNumberSource{}, quietLogger())

	number, err := seq.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0001", number)
}

func TestNext_SkipsNonNumericNumbers(t *testing.T) {
	source := &fakeNumberSource{numbers: []string{"A1B2C3", "0005", "legacy-9"}}
	seq := order.NewStoreSequencer(source, quietLogger())

	number, err := seq.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0006", number)
}

func TestNext_FallbackCounterIsStrictlyIncreasing(t *testing.T) {
	source := &fakeNumberSource{err: errors.New("store unreachable")}
	seq := order.NewStoreSequencer(source, quietLogger())

	for i := 1; i <= 5; i++ {
		number, err := seq.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%04d", i), number)
	}
}

func TestNext_FallbackResumesScanWhenStoreRecovers(t *testing.T) {
	source := &fakeNumberSource{err: errors.New("store unreachable")}
	seq := order.NewStoreSequencer(source, quietLogger())

	_, err := seq.Next(context.Background())
	require.NoError(t, err)

	source.err = nil
	source.numbers = []string{"0042"}

	number, err := seq.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0043", number)
}
