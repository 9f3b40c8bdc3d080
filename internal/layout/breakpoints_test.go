package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		width int
		want  Class
	}{
		{0, Base},
		{MDWidth - 1, Base},
		{MDWidth, MD},
		{XLWidth - 1, MD},
		{XLWidth, XL},
		{400, XL},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Classify(tc.width), "width %d", tc.width)
	}
}

func TestColumnsIncreaseWithWidth(t *testing.T) {
	require.Equal(t, 2, ForWidth(40).Columns)
	require.Equal(t, 3, ForWidth(100).Columns)
	require.Equal(t, 4, ForWidth(200).Columns)
}

func TestHeaderHeightPerClass(t *testing.T) {
	require.Equal(t, 3, ForWidth(40).HeaderHeight)
	require.Equal(t, 4, ForWidth(100).HeaderHeight)
	require.Equal(t, 5, ForWidth(200).HeaderHeight)
}

func TestBodyHeight(t *testing.T) {
	require.Equal(t, 37, BodyHeight(40, 60))
	require.Equal(t, 36, BodyHeight(40, 100))
	require.Equal(t, 35, BodyHeight(40, 200))
	require.Equal(t, 0, BodyHeight(2, 200))
}

func TestClassString(t *testing.T) {
	require.Equal(t, "base", Base.String())
	require.Equal(t, "md", MD.String())
	require.Equal(t, "xl", XL.String())
}
