package vecmap

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect copies the iteration order into a slice for comparison.
func collect[K cmp.Ordered, V any](m *VecMap[K, V]) []Pair[K, V] {
	out := []Pair[K, V]{}
	for k, v := range m.All() {
		out = append(out, P(k, v))
	}
	return out
}

func TestVecMap(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		m := New[int, string]()

		_, existed := m.Insert(3, "c")
		assert.False(t, existed)
		_, existed = m.Insert(1, "a")
		assert.False(t, existed)
		_, existed = m.Insert(2, "b")
		assert.False(t, existed)

		require.Equal(t, 3, m.Len())

		v, ok := m.Get(2)
		require.True(t, ok)
		assert.Equal(t, "b", v)

		_, ok = m.Get(4)
		assert.False(t, ok)

		// Insertion order never shows: iteration is ascending by key.
		assert.Equal(t, []Pair[int, string]{P(1, "a"), P(2, "b"), P(3, "c")}, collect(m))
	})

	t.Run("InsertReplace", func(t *testing.T) {
		m := Of(P(1, "a"), P(2, "b"))

		old, existed := m.Insert(2, "B")
		require.True(t, existed)
		assert.Equal(t, "b", old)
		assert.Equal(t, 2, m.Len())

		v, ok := m.Get(2)
		require.True(t, ok)
		assert.Equal(t, "B", v)
	})

	t.Run("GetMut", func(t *testing.T) {
		m := Of(P(1, 10), P(2, 20))

		p := m.GetMut(2)
		require.NotNil(t, p)
		*p += 5

		v, _ := m.Get(2)
		assert.Equal(t, 25, v)

		assert.Nil(t, m.GetMut(3))
	})

	t.Run("GetKeyValue", func(t *testing.T) {
		m := Of(P(1, "a"))

		p, ok := m.GetKeyValue(1)
		require.True(t, ok)
		assert.Equal(t, P(1, "a"), p)

		_, ok = m.GetKeyValue(2)
		assert.False(t, ok)
	})

	t.Run("MustGet", func(t *testing.T) {
		m := Of(P(1, "a"))

		assert.Equal(t, "a", m.MustGet(1))
		assert.PanicsWithValue(t, "vecmap: no entry found for key", func() {
			m.MustGet(2)
		})
	})

	t.Run("Remove", func(t *testing.T) {
		m := Of(P(1, "a"), P(2, "b"), P(3, "c"))

		v, ok := m.Remove(2)
		require.True(t, ok)
		assert.Equal(t, "b", v)
		assert.Equal(t, 2, m.Len())
		assert.False(t, m.ContainsKey(2))

		_, ok = m.Remove(2)
		assert.False(t, ok)
		assert.Equal(t, 2, m.Len())

		p, ok := m.RemoveKeyValue(3)
		require.True(t, ok)
		assert.Equal(t, P(3, "c"), p)
		assert.Equal(t, []Pair[int, string]{P(1, "a")}, collect(m))
	})

	t.Run("ContainsKey", func(t *testing.T) {
		m := Of(P(1, "a"))

		assert.True(t, m.ContainsKey(1))
		assert.False(t, m.ContainsKey(0))
	})

	t.Run("Clear", func(t *testing.T) {
		m := Of(P(1, "a"), P(2, "b"))

		capBefore := m.Cap()
		m.Clear()

		assert.True(t, m.IsEmpty())
		assert.Equal(t, 0, m.Len())
		assert.Equal(t, capBefore, m.Cap())
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var m VecMap[int, string]

		assert.True(t, m.IsEmpty())
		_, ok := m.Get(1)
		assert.False(t, ok)

		m.Insert(1, "a")
		assert.Equal(t, 1, m.Len())
	})

	t.Run("Grow", func(t *testing.T) {
		m := Of(P(1, "a"))

		m.Grow(32)
		assert.GreaterOrEqual(t, m.Cap(), 33)
		assert.Equal(t, []Pair[int, string]{P(1, "a")}, collect(m))
	})
}

func TestPush(t *testing.T) {
	m := Of(P(2, "b"), P(3, "c"), P(5, "f"))

	// Not past the current maximum: rejected, map untouched.
	assert.False(t, m.Push(4, "d"))
	assert.Equal(t, []Pair[int, string]{P(2, "b"), P(3, "c"), P(5, "f")}, collect(m))

	// Equal to the current maximum: rejected as well.
	assert.False(t, m.Push(5, "d"))
	assert.Equal(t, []Pair[int, string]{P(2, "b"), P(3, "c"), P(5, "f")}, collect(m))

	assert.True(t, m.Push(6, "d"))
	assert.Equal(t, []Pair[int, string]{P(2, "b"), P(3, "c"), P(5, "f"), P(6, "d")}, collect(m))

	empty := New[int, string]()
	assert.True(t, empty.Push(1, "a"))
	assert.Equal(t, 1, empty.Len())
}

func TestSplitOff(t *testing.T) {
	t.Run("Partition", func(t *testing.T) {
		m := Of(P(1, "1"), P(2, "2"), P(5, "5"))

		hi := m.SplitOff(3)
		assert.Equal(t, []Pair[int, string]{P(5, "5")}, collect(hi))
		assert.Equal(t, []Pair[int, string]{P(1, "1"), P(2, "2")}, collect(m))

		rest := m.SplitOff(0)
		assert.Equal(t, []Pair[int, string]{P(1, "1"), P(2, "2")}, collect(rest))
		assert.True(t, m.IsEmpty())
	})

	t.Run("AtExistingKey", func(t *testing.T) {
		m := Of(P(1, "a"), P(2, "b"), P(3, "c"))

		hi := m.SplitOff(2)
		assert.Equal(t, []Pair[int, string]{P(2, "b"), P(3, "c")}, collect(hi))
		assert.Equal(t, []Pair[int, string]{P(1, "a")}, collect(m))
	})

	t.Run("PastEnd", func(t *testing.T) {
		m := Of(P(1, "a"))

		hi := m.SplitOff(9)
		assert.True(t, hi.IsEmpty())
		assert.Equal(t, 1, m.Len())
	})

	t.Run("Empty", func(t *testing.T) {
		m := New[int, string]()

		hi := m.SplitOff(1)
		assert.True(t, hi.IsEmpty())
		assert.True(t, m.IsEmpty())
	})
}

func TestExtend(t *testing.T) {
	t.Run("LastWins", func(t *testing.T) {
		m := Of(P(2, "b"))

		m.Extend(P(1, "a"), P(3, "x"), P(3, "c"), P(2, "B"))

		assert.Equal(t, []Pair[int, string]{P(1, "a"), P(2, "B"), P(3, "c")}, collect(m))
	})

	t.Run("SeqMatchesVariadic", func(t *testing.T) {
		src := Of(P(1, "a"), P(2, "b"), P(3, "c"))

		a := Of(P(2, "old"))
		a.Extend(P(1, "a"), P(2, "b"), P(3, "c"))

		b := Of(P(2, "old"))
		b.ExtendSeq(src.All())

		assert.True(t, Equal(a, b))
	})
}

func TestEndAccessors(t *testing.T) {
	t.Run("FirstLast", func(t *testing.T) {
		m := Of(P(2, "b"), P(1, "a"), P(3, "c"))

		first, ok := m.First()
		require.True(t, ok)
		assert.Equal(t, P(1, "a"), first)

		last, ok := m.Last()
		require.True(t, ok)
		assert.Equal(t, P(3, "c"), last)
	})

	t.Run("Pop", func(t *testing.T) {
		m := Of(P(1, "a"), P(2, "b"), P(3, "c"))

		first, ok := m.PopFirst()
		require.True(t, ok)
		assert.Equal(t, P(1, "a"), first)

		last, ok := m.PopLast()
		require.True(t, ok)
		assert.Equal(t, P(3, "c"), last)

		assert.Equal(t, []Pair[int, string]{P(2, "b")}, collect(m))
	})

	t.Run("Empty", func(t *testing.T) {
		m := New[int, string]()

		_, ok := m.First()
		assert.False(t, ok)
		_, ok = m.Last()
		assert.False(t, ok)
		_, ok = m.PopFirst()
		assert.False(t, ok)
		_, ok = m.PopLast()
		assert.False(t, ok)
	})
}

func TestRetain(t *testing.T) {
	m := Of(P(1, 1), P(2, 2), P(3, 3), P(4, 4))

	m.Retain(func(key int, value *int) bool {
		*value *= 10 // retained values may be rewritten in the same pass
		return key%2 == 0
	})

	assert.Equal(t, []Pair[int, int]{P(2, 20), P(4, 40)}, collect(m))

	m.Retain(func(int, *int) bool { return true })
	assert.Equal(t, 2, m.Len())
}

func TestClone(t *testing.T) {
	m := Of(P(1, "a"), P(2, "b"))

	c := m.Clone()
	c.Insert(3, "c")
	c.Insert(1, "A")

	assert.Equal(t, []Pair[int, string]{P(1, "a"), P(2, "b")}, collect(m))
	assert.Equal(t, []Pair[int, string]{P(1, "A"), P(2, "b"), P(3, "c")}, collect(c))
}

func TestString(t *testing.T) {
	assert.Equal(t, "vecmap[]", New[int, string]().String())
	assert.Equal(t, "vecmap[1:a 2:b]", Of(P(2, "b"), P(1, "a")).String())
}

func TestConstructors(t *testing.T) {
	t.Run("NewWithCapacity", func(t *testing.T) {
		m := New[int, string](func(o *Options) {
			o.Capacity = 16
		})

		assert.True(t, m.IsEmpty())
		assert.GreaterOrEqual(t, m.Cap(), 16)
	})

	t.Run("OfMatchesInsert", func(t *testing.T) {
		a := Of(P(2, "x"), P(1, "y"), P(2, "z"))

		b := New[int, string]()
		b.Insert(2, "x")
		b.Insert(1, "y")
		b.Insert(2, "z")

		assert.True(t, Equal(a, b))
	})

	t.Run("Collect", func(t *testing.T) {
		src := Of(P(1, "a"), P(2, "b"))

		m := Collect(src.All())

		assert.True(t, Equal(src, m))
	})
}

func TestEqual(t *testing.T) {
	a := Of(P(1, "a"), P(2, "b"))
	b := Of(P(2, "b"), P(1, "a"))
	c := Of(P(1, "a"), P(2, "x"))
	d := Of(P(1, "a"))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, d))
	assert.True(t, Equal(New[int, string](), New[int, string]()))

	ints := Of(P(1, 1), P(2, 2))
	longs := Of(P(1, int64(1)), P(2, int64(2)))
	assert.True(t, EqualFunc(ints, longs, func(a int, b int64) bool {
		return int64(a) == b
	}))
}
