package naming

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileBase(t *testing.T) {
	require.Equal(t, "point_value", FileBase("PointValue", "goal"))
	require.Equal(t, "geo_shapes", FileBase("geo-shapes", "module"))
	require.Equal(t, "goal", FileBase("--", "goal"))
}

func TestGeneratedNames(t *testing.T) {
	require.Equal(t, "PointBuilderX", StepInterface("point", "x", true))
	require.Equal(t, "pointBuilderX", StepInterface("point", "x", false))
	require.Equal(t, "pointBuilderImpl", BuilderImpl("Point"))
	require.Equal(t, "NewPointBuilder", BuilderEntry("point", true))
	require.Equal(t, "newPointBuilder", BuilderEntry("point", false))
	require.Equal(t, "PointUpdater", UpdaterInterface("point", true))
	require.Equal(t, "pointUpdaterImpl", UpdaterImpl("point"))
	require.Equal(t, "NewPointUpdater", UpdaterEntry("point", true))
	require.Equal(t, "EmptyTags", EmptyMethod("tags"))
	require.Equal(t, "Tags", Method("tags"))
}

func TestSingular(t *testing.T) {
	require.Equal(t, "tag", Singular("tags"))
	require.Equal(t, "classItem", Singular("class"))
	require.Equal(t, "dataItem", Singular("data"))
	require.Equal(t, "sItem", Singular("s"))
}

func TestUnique(t *testing.T) {
	taken := Taken("seq")
	require.Equal(t, "seq1", Unique("seq", taken))
	require.Equal(t, "seq2", Unique("seq", taken))
	require.Equal(t, "elem", Unique("elem", taken))
	require.Equal(t, "b1", Unique("b", taken))
}

func TestGoalKey(t *testing.T) {
	require.Equal(t, GoalKey("point_value"), GoalKey("PointValue"))
}
