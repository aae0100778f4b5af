package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/dystudio/try/internal/model"
)

func luaMarkers(t *testing.T) MarkerStrategy {
	t.Helper()

	markers, err := Dialect("lua")
	require.NoError(t, err)

	return markers
}

func TestDialect(t *testing.T) {
	for _, name := range Dialects() {
		_, err := Dialect(name)
		assert.NoError(t, err, name)
	}

	_, err := Dialect(" CSharp ")
	assert.NoError(t, err)

	_, err = Dialect("cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csharp")
}

func TestLineMarkers(t *testing.T) {
	lm := LineMarkers{Begin: "#region", End: "#endregion"}

	name, ok := lm.Open("    #region  body  ")
	assert.True(t, ok)
	assert.Equal(t, "body", name)

	_, ok = lm.Open("#regionbody")
	assert.False(t, ok)

	_, ok = lm.Open("#endregion")
	assert.False(t, ok)

	assert.True(t, lm.Close("  #endregion"))
	assert.True(t, lm.Close("#endregion body"))
	assert.False(t, lm.Close("#endregions"))
}

func TestLocate_Found(t *testing.T) {
	text := "local a = 1\n--#region body\nprint(a)\n--#endregion\nreturn a\n"

	loc := Locate(text, "body", luaMarkers(t))

	require.Equal(t, LocateFound, loc.Status)
	assert.Equal(t, "print(a)", text[loc.Region.Start:loc.Region.End()])
	assert.Equal(t, "--#region body\nprint(a)\n--#endregion", text[loc.Outer.Start:loc.Outer.End()])
	assert.Empty(t, loc.Terminator)
	assert.Equal(t, 1, loc.Matches)
}

func TestLocate_WholeText(t *testing.T) {
	text := "x = 1\n"

	loc := Locate(text, "", luaMarkers(t))

	require.Equal(t, LocateFound, loc.Status)
	assert.Equal(t, m.Span{Start: 0, Length: len(text)}, loc.Region)
	assert.Equal(t, loc.Region, loc.Outer)
}

func TestLocate_NotFoundAndDuplicate(t *testing.T) {
	text := "--#region a\nx\n--#endregion\n--#region a\ny\n--#endregion\n"

	assert.Equal(t, LocateNotFound, Locate(text, "b", luaMarkers(t)).Status)

	loc := Locate(text, "a", luaMarkers(t))
	assert.Equal(t, LocateDuplicate, loc.Status)
	assert.Equal(t, 2, loc.Matches)
	assert.Equal(t, "duplicate", loc.Status.String())
}

func TestLocate_EmptyRegion(t *testing.T) {
	text := "--#region empty\n--#endregion\n"

	loc := Locate(text, "empty", luaMarkers(t))

	require.Equal(t, LocateFound, loc.Status)
	assert.True(t, loc.Region.IsEmpty())
	assert.Equal(t, len("--#region empty\n"), loc.Region.Start)
	assert.Equal(t, "\n", loc.Terminator)
}

func TestLocate_CRLF(t *testing.T) {
	text := "--#region r\r\nbody\r\n--#endregion\r\n"

	loc := Locate(text, "r", luaMarkers(t))

	require.Equal(t, LocateFound, loc.Status)
	assert.Equal(t, "body", text[loc.Region.Start:loc.Region.End()])

	empty := Locate("--#region e\r\n--#endregion\r\n", "e", luaMarkers(t))
	assert.Equal(t, "\r\n", empty.Terminator)
}

func TestLocate_OuterExcludesLineBreakOfEndMarker(t *testing.T) {
	lf := `x = 1
--#region r
body
--#endregion
y = 2
`
	crlf := strings.ReplaceAll(lf, "\n", "\r\n")

	for _, text := range []string{lf, crlf, "--#region r\nbody\n--#endregion"} {
		loc := Locate(text, "r", luaMarkers(t))
		require.Equal(t, LocateFound, loc.Status)

		outer := text[loc.Outer.Start:loc.Outer.End()]
		assert.True(t, strings.HasPrefix(outer, "--#region r"), "%q", outer)
		assert.True(t, strings.HasSuffix(outer, "--#endregion"), "%q", outer)
	}

	lfLoc := Locate(lf, "r", luaMarkers(t))
	crlfLoc := Locate(crlf, "r", luaMarkers(t))

	assert.Equal(t, "\r\n", crlf[crlfLoc.Outer.End():crlfLoc.Outer.End()+2])
	assert.Equal(t, lfLoc.Outer.Length+2, crlfLoc.Outer.Length)
}

func TestRegions_NestedAndUnbalanced(t *testing.T) {
	text := "--#endregion\n" +
		"--#region outer\n" +
		"a\n" +
		"--#region inner\n" +
		"b\n" +
		"--#endregion\n" +
		"c\n" +
		"--#endregion\n" +
		"--#region dangling\n" +
		"d\n"

	regions := Regions(text, luaMarkers(t))

	require.Len(t, regions, 2)
	assert.Equal(t, "outer", regions[0].Name)
	assert.Equal(t, "inner", regions[1].Name)
	assert.True(t, regions[0].Outer.ContainsSpan(regions[1].Outer))
	assert.Equal(t, "b", text[regions[1].Region.Start:regions[1].Region.End()])
	assert.Equal(t, []string{"outer", "inner"}, regionNames(regions))

	assert.Equal(t, LocateNotFound, Locate(text, "dangling", luaMarkers(t)).Status)
}
