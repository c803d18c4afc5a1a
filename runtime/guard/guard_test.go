package guard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullArgument(t *testing.T) {
	err := NullArgument("tags (element)")
	var nae *NullArgumentError
	require.True(t, errors.As(err, &nae))
	require.Equal(t, "tags (element)", nae.Param)
	require.EqualError(t, err, "null argument: tags (element)")
}

type shape interface{ Area() float64 }

func TestIsNil(t *testing.T) {
	var (
		ptr   *int
		slice []string
		m     map[string]int
		ch    chan int
		fn    func()
		iface shape
		err   error
	)
	require.True(t, IsNil(ptr))
	require.True(t, IsNil(slice))
	require.True(t, IsNil(m))
	require.True(t, IsNil(ch))
	require.True(t, IsNil(fn))
	require.True(t, IsNil(iface))
	require.True(t, IsNil(err))
	require.True(t, IsNil[any](nil))

	one := 1
	require.False(t, IsNil(&one))
	require.False(t, IsNil([]string{}))
	require.False(t, IsNil(map[string]int{}))
	require.False(t, IsNil(0))
	require.False(t, IsNil(""))
	require.False(t, IsNil(struct{}{}))
	require.False(t, IsNil(errors.New("boom")))
}
