package estimator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixed struct {
	info Info
	fail Action
}

func (f *fixed) Info() Info { return f.info }

func (f *fixed) Energy(a Action) (float64, error) {
	if a == f.fail || !f.info.Supports(a) {
		return 0, Unsupported(f.info, a)
	}
	return 1e-12, nil
}

func (f *fixed) Leak() float64 { return 2e-15 }
func (f *fixed) Area() float64 { return 3e-9 }

var fixedInfo = Info{Name: "fixed", Aliases: []string{"fixed_alias"}, Accuracy: 50, Actions: []Action{Read, Write}}

func TestInfo(t *testing.T) {
	assert.Equal(t, []string{"fixed", "fixed_alias"}, fixedInfo.Names())
	assert.True(t, fixedInfo.Supports(Read))
	assert.False(t, fixedInfo.Supports(Mult))
}

func TestQuery(t *testing.T) {
	r, err := Query(&fixed{info: fixedInfo})
	require.NoError(t, err)
	assert.Equal(t, map[Action]float64{Read: 1e-12, Write: 1e-12}, r.Actions)
	assert.Equal(t, 2e-15, r.Leak)
	assert.Equal(t, 3e-9, r.Area)

	r, err = Query(&fixed{info: fixedInfo, fail: Write})
	require.ErrorIs(t, err, ErrUnsupportedAction)
	assert.Len(t, r.Actions, 1)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	ctor := func(Attributes) (Estimator, error) { return &fixed{info: fixedInfo}, nil }
	require.NoError(t, r.Register(fixedInfo, ctor))

	err := r.Register(Info{Name: "other", Aliases: []string{"fixed_alias"}}, ctor)
	require.ErrorIs(t, err, ErrDuplicateClass)
	assert.Panics(t, func() { r.MustRegister(fixedInfo, ctor) })

	e, err := r.New("fixed_alias", nil)
	require.NoError(t, err)
	assert.Equal(t, "fixed", e.Info().Name)

	_, err = r.New("nope", nil)
	require.ErrorIs(t, err, ErrUnknownClass)

	info, ok := r.Lookup("fixed")
	require.True(t, ok)
	assert.Equal(t, 50, info.Accuracy)
	assert.Len(t, r.Classes(), 1)
}

func TestRegistry_ConstructorErrorWrapped(t *testing.T) {
	sentinel := errors.New("bad cell")
	r := NewRegistry()
	r.MustRegister(Info{Name: "broken"}, func(Attributes) (Estimator, error) { return nil, sentinel })
	_, err := r.New("broken", Attributes{})
	require.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "broken")
}

func TestAttributes(t *testing.T) {
	a := Attributes{
		"width":  64,
		"cycle":  2e-10,
		"depth":  "128",
		"half":   1.5,
		"name":   "v1.0",
		"nil":    nil,
		"wrong":  []int{1},
		"int64":  int64(7),
		"number": 3.0,
	}

	w, err := a.Int("width")
	require.NoError(t, err)
	assert.Equal(t, 64, w)

	d, err := a.Int("depth")
	require.NoError(t, err)
	assert.Equal(t, 128, d)

	n, err := a.Int("number")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = a.Int("half")
	require.ErrorIs(t, err, ErrAttributeType)

	c, err := a.Float("cycle")
	require.NoError(t, err)
	assert.Equal(t, 2e-10, c)

	i, err := a.Float("int64")
	require.NoError(t, err)
	assert.Equal(t, 7.0, i)

	_, err = a.Float("wrong")
	require.ErrorIs(t, err, ErrAttributeType)

	_, err = a.Float("missing")
	require.ErrorIs(t, err, ErrMissingAttribute)
	_, err = a.Float("nil")
	require.ErrorIs(t, err, ErrMissingAttribute)

	s, err := a.String("name")
	require.NoError(t, err)
	assert.Equal(t, "v1.0", s)
	s, err = a.String("width")
	require.NoError(t, err)
	assert.Equal(t, "64", s)
	_, err = a.String("wrong")
	require.ErrorIs(t, err, ErrAttributeType)

	v, err := a.IntOr("absent", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	f, err := a.FloatOr("nil", 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
	str, err := a.StringOr("absent", "conservative")
	require.NoError(t, err)
	assert.Equal(t, "conservative", str)

	cl := a.Clone()
	cl["width"] = 1
	assert.Equal(t, 64, a["width"])
	assert.True(t, a.Has("width"))
	assert.False(t, a.Has("nil"))
}
