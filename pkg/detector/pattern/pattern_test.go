package pattern_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gradeskim/gradeskim/pkg/detector/pattern"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	d, err := pattern.New()
	require.NoError(t, err)

	t.Run("abstains without matches", func(t *testing.T) {
		verdict, err := d.Detect(context.Background(), "The cat sat on the mat and napped all day.")
		require.NoError(t, err)
		require.Nil(t, verdict)
	})

	t.Run("single match scores 65", func(t *testing.T) {
		verdict, err := d.Detect(context.Background(), "The results were surprising. In conclusion, cats nap.")
		require.NoError(t, err)
		require.NotNil(t, verdict)
		require.Equal(t, 65, verdict.Score)
		require.Contains(t, verdict.Reason, "in conclusion")
	})

	t.Run("two matches score 98", func(t *testing.T) {
		verdict, err := d.Detect(context.Background(), "In conclusion, cats nap. Furthermore, they purr.")
		require.NoError(t, err)
		require.NotNil(t, verdict)
		require.Equal(t, 98, verdict.Score)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		verdict, err := d.Detect(context.Background(), "FURTHERMORE, the data agrees.")
		require.NoError(t, err)
		require.NotNil(t, verdict)
		require.Equal(t, 65, verdict.Score)
	})

	t.Run("reason lists at most three phrases", func(t *testing.T) {
		verdict, err := d.Detect(context.Background(), "Firstly, this. Secondly, that. Furthermore, more. Moreover, yet more. In conclusion, done.")
		require.NoError(t, err)
		require.NotNil(t, verdict)
		require.Equal(t, 98, verdict.Score)
		require.LessOrEqual(t, strings.Count(verdict.Reason, ","), 4)
	})
}

func TestDetectCustomPhrases(t *testing.T) {
	d, err := pattern.New(pattern.WithPhrases("blue banana"))
	require.NoError(t, err)

	verdict, err := d.Detect(context.Background(), "Moreover, a Blue Banana appeared.")
	require.NoError(t, err)
	require.NotNil(t, verdict)
	require.Equal(t, 65, verdict.Score)
}
