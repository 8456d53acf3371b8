package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

func TestLevelFilter_Allows(t *testing.T) {
	t.Parallel()

	assert.False(t, Off.Allows(core.ErrorLevel))
	assert.True(t, Error.Allows(core.ErrorLevel))
	assert.False(t, Error.Allows(core.WarnLevel))
	assert.True(t, Info.Allows(core.WarnLevel))
	assert.False(t, Info.Allows(core.DebugLevel))
	assert.True(t, Trace.Allows(core.TraceLevel))
}

func TestParseLevelFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   LevelFilter
		wantOK bool
	}{
		{"off", Off, true},
		{"ERROR", Error, true},
		{"warn", Warn, true},
		{"info", Info, true},
		{"debug", Debug, true},
		{"trace", Trace, true},
		{"verbose", Off, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseLevelFilter(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParse_Directives(t *testing.T) {
	t.Parallel()

	f, err := Parse("warn,app::db=debug,app::db::pool=off,hyper")
	require.NoError(t, err)

	tests := []struct {
		name   string
		level  core.Level
		module string
		want   bool
	}{
		{"default passes warn", core.WarnLevel, "other", true},
		{"default blocks info", core.InfoLevel, "other", false},
		{"module override", core.DebugLevel, "app::db", true},
		{"module prefix", core.DebugLevel, "app::db::query", true},
		{"module blocks trace", core.TraceLevel, "app::db", false},
		{"longest prefix off", core.ErrorLevel, "app::db::pool", false},
		{"bare module is trace", core.TraceLevel, "hyper::client", true},
		{"empty module uses default", core.ErrorLevel, "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, f.Enabled(tt.level, tt.module))
		})
	}
	assert.Equal(t, Trace, f.MaxLevel())
}

func TestParse_InvalidDirectivesAreSkipped(t *testing.T) {
	t.Parallel()

	f, err := Parse("info,app=loud,x=y=z,db=debug")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
	assert.Contains(t, err.Error(), "x=y=z")

	assert.True(t, f.Enabled(core.DebugLevel, "db"))
	assert.False(t, f.Enabled(core.DebugLevel, "app"))
	assert.True(t, f.Enabled(core.InfoLevel, "app"))
}

func TestParse_MessagePattern(t *testing.T) {
	t.Parallel()

	f, err := Parse("info/conn")
	require.NoError(t, err)

	assert.True(t, f.Matches(&core.Record{Level: core.InfoLevel, Message: "conn lost"}))
	assert.False(t, f.Matches(&core.Record{Level: core.InfoLevel, Message: "all good"}))
	assert.False(t, f.Matches(&core.Record{Level: core.DebugLevel, Message: "conn lost"}))

	_, err = Parse("info/(")
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	f, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, []Directive{{Level: Error}}, f.Directives())
	assert.True(t, f.Enabled(core.ErrorLevel, "any"))
	assert.False(t, f.Enabled(core.WarnLevel, "any"))

	f, err = Parse("db=debug")
	require.NoError(t, err)
	assert.True(t, f.Enabled(core.DebugLevel, "db"))
	assert.False(t, f.Enabled(core.ErrorLevel, "web"))
}

func TestParse_PackagePathModules(t *testing.T) {
	t.Parallel()

	const pkg = "github.com/acme/app/internal/foo"

	f, err := Parse("info," + pkg + "=debug")
	require.NoError(t, err)
	assert.True(t, f.Enabled(core.DebugLevel, pkg))
	assert.True(t, f.Enabled(core.DebugLevel, pkg+"/sub"))
	assert.False(t, f.Enabled(core.TraceLevel, pkg))
	assert.True(t, f.Enabled(core.InfoLevel, "main"))
	assert.False(t, f.Enabled(core.DebugLevel, "main"))
	assert.True(t, f.Matches(&core.Record{Level: core.InfoLevel, Module: "main", Message: "anything"}))
	assert.Equal(t, "info,"+pkg+"=debug", f.String())

	f, err = Parse("warn," + pkg)
	require.NoError(t, err)
	assert.True(t, f.Enabled(core.TraceLevel, pkg))
	assert.False(t, f.Enabled(core.InfoLevel, "main"))

	f, err = Parse("info," + pkg + "=debug/conn,x")
	require.NoError(t, err)
	assert.True(t, f.Matches(&core.Record{Level: core.DebugLevel, Module: pkg, Message: "conn,x lost"}))
	assert.False(t, f.Matches(&core.Record{Level: core.DebugLevel, Module: pkg, Message: "conn lost"}))
	assert.Equal(t, "info,"+pkg+"=debug/conn,x", f.String())
}

func TestParse_DirectiveAfterPattern(t *testing.T) {
	t.Parallel()

	f, err := Parse("info/conn,db=debug")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db=debug")
	assert.False(t, f.Enabled(core.DebugLevel, "db"))
	assert.True(t, f.Enabled(core.InfoLevel, "db"))
}

func TestWith_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := New(Info)
	debug := base.WithDefault(Debug)
	withMod := base.WithModule("db", Trace)

	assert.False(t, base.Enabled(core.DebugLevel, "x"))
	assert.True(t, debug.Enabled(core.DebugLevel, "x"))
	assert.True(t, withMod.Enabled(core.TraceLevel, "db"))
	assert.False(t, base.Enabled(core.TraceLevel, "db"))

	over, err := base.WithSpec("db=warn")
	require.NoError(t, err)
	assert.False(t, over.Enabled(core.InfoLevel, "db"))
	assert.True(t, over.Enabled(core.InfoLevel, "web"))
}

func TestFilter_String(t *testing.T) {
	t.Parallel()

	f, err := Parse("db=debug,info,app::db::pool=off/x+")
	require.NoError(t, err)
	assert.Equal(t, "info,db=debug,app::db::pool=off/x+", f.String())
}

func TestLevelFilter_MinLevel(t *testing.T) {
	l, ok := Debug.MinLevel()
	assert.True(t, ok)
	assert.Equal(t, core.DebugLevel, l)

	_, ok = Off.MinLevel()
	assert.False(t, ok)
}
