package filter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

// Directive sets the level for records whose module starts with Module.
// An empty Module is the default directive.
type Directive struct {
	Module string
	Level  LevelFilter
}

// Filter decides which records reach the output. It is immutable; the
// With methods return modified copies, so a Filter can be shared between
// goroutines.
type Filter struct {
	// sorted by module length, shortest first
	directives []Directive
	message    *regexp.Regexp
}

// New returns a filter with a single default directive
func New(defaultLevel LevelFilter) *Filter {
	return &Filter{directives: []Directive{{Level: defaultLevel}}}
}

// Parse reads a filter specification of the form
//
//	[level][,module[=level]]...[/regex]
//
// for example "info,db::pool=debug,noisy=off/conn". A bare module name
// enables every level for it. Module names may contain slashes, so
// "info,github.com/acme/app/internal/db=debug" names a Go package; the
// message pattern starts at the first '/' that follows a level, either a
// bare one or the level of a "module=level" directive. Invalid directives
// are skipped and reported in the returned error while the valid ones are
// kept.
//
// A spec without any directive yields the Error default. A spec with only
// module directives has no default, so other modules are off.
func Parse(spec string) (*Filter, error) {
	f, err := (&Filter{}).WithSpec(spec)
	if len(f.directives) == 0 {
		f.insert(Directive{Level: Error})
	}
	return f, err
}

// WithSpec returns a copy of f with the directives of spec added on top.
// Directives for the same module replace earlier ones.
func (f *Filter) WithSpec(spec string) (*Filter, error) {
	out := f.clone()
	var errs error

	mods, pattern, hasPattern := splitSpec(spec)
	if hasPattern {
		re, err := regexp.Compile(pattern)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "filter: invalid message pattern %q", pattern))
		} else {
			out.message = re
		}
		for _, frag := range strings.Split(pattern, ",") {
			if looksLikeDirective(frag) {
				errs = multierr.Append(errs, errors.Newf(
					"filter: message pattern %q contains directive %q; the pattern must come last", pattern, frag))
			}
		}
	}

	for _, part := range strings.Split(mods, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, level, hasLevel := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		level = strings.TrimSpace(level)

		switch {
		case !hasLevel:
			if lf, ok := ParseLevelFilter(name); ok {
				out.insert(Directive{Level: lf})
			} else {
				out.insert(Directive{Module: name, Level: Trace})
			}
		case strings.Contains(level, "="):
			errs = multierr.Append(errs, errors.Newf("filter: invalid directive %q", part))
		case level == "":
			out.insert(Directive{Module: name, Level: Trace})
		default:
			lf, ok := ParseLevelFilter(level)
			if !ok {
				errs = multierr.Append(errs, errors.Newf("filter: invalid level %q in directive %q", level, part))
				continue
			}
			out.insert(Directive{Module: name, Level: lf})
		}
	}
	return out, errs
}

// splitSpec separates the directive list from the message pattern.
// Slashes inside module names belong to the module.
func splitSpec(spec string) (mods, pattern string, hasPattern bool) {
	start := 0
	for {
		end := strings.IndexByte(spec[start:], ',')
		if end < 0 {
			end = len(spec)
		} else {
			end += start
		}
		if i := levelSlash(spec[start:end]); i >= 0 {
			cut := start + i
			return spec[:cut], spec[cut+1:], true
		}
		if end == len(spec) {
			return spec, "", false
		}
		start = end + 1
	}
}

// levelSlash returns the index of a '/' in part that directly follows a
// level, or -1.
func levelSlash(part string) int {
	if eq := strings.IndexByte(part, '='); eq >= 0 {
		if i := strings.IndexByte(part[eq+1:], '/'); i >= 0 {
			return eq + 1 + i
		}
		return -1
	}
	i := strings.IndexByte(part, '/')
	if i < 0 {
		return -1
	}
	head := strings.TrimSpace(part[:i])
	if head == "" {
		return i
	}
	if _, ok := ParseLevelFilter(head); ok {
		return i
	}
	return -1
}

func looksLikeDirective(frag string) bool {
	_, level, ok := strings.Cut(frag, "=")
	if !ok {
		return false
	}
	_, ok = ParseLevelFilter(strings.TrimSpace(level))
	return ok
}

// WithDefault returns a copy of f whose default directive is lf
func (f *Filter) WithDefault(lf LevelFilter) *Filter {
	out := f.clone()
	out.insert(Directive{Level: lf})
	return out
}

// WithModule returns a copy of f with a directive for module
func (f *Filter) WithModule(module string, lf LevelFilter) *Filter {
	out := f.clone()
	out.insert(Directive{Module: module, Level: lf})
	return out
}

// Enabled reports whether a record of level l from module passes the
// level directives. The directive with the longest matching module
// prefix wins. Without a matching directive nothing passes.
func (f *Filter) Enabled(l core.Level, module string) bool {
	for i := len(f.directives) - 1; i >= 0; i-- {
		d := f.directives[i]
		if strings.HasPrefix(module, d.Module) {
			return d.Level.Allows(l)
		}
	}
	return false
}

// Matches reports whether rec passes both the level directives and the
// message pattern, if any.
func (f *Filter) Matches(rec *core.Record) bool {
	if !f.Enabled(rec.Level, rec.Module) {
		return false
	}
	if f.message != nil {
		return f.message.MatchString(rec.Text())
	}
	return true
}

// MaxLevel returns the most verbose level any directive lets through
func (f *Filter) MaxLevel() LevelFilter {
	most := Off
	for _, d := range f.directives {
		if d.Level > most {
			most = d.Level
		}
	}
	return most
}

// Directives returns a copy of the directives, shortest module first
func (f *Filter) Directives() []Directive {
	out := make([]Directive, len(f.directives))
	copy(out, f.directives)
	return out
}

// String renders the filter back into the Parse syntax
func (f *Filter) String() string {
	var sb strings.Builder
	for i, d := range f.directives {
		if i > 0 {
			sb.WriteByte(',')
		}
		if d.Module != "" {
			sb.WriteString(d.Module)
			sb.WriteByte('=')
		}
		sb.WriteString(d.Level.String())
	}
	if f.message != nil {
		sb.WriteByte('/')
		sb.WriteString(f.message.String())
	}
	return sb.String()
}

func (f *Filter) clone() *Filter {
	out := &Filter{message: f.message}
	out.directives = make([]Directive, len(f.directives))
	copy(out.directives, f.directives)
	return out
}

func (f *Filter) insert(d Directive) {
	for i := range f.directives {
		if f.directives[i].Module == d.Module {
			f.directives[i].Level = d.Level
			return
		}
	}
	f.directives = append(f.directives, d)
	sort.SliceStable(f.directives, func(i, j int) bool {
		return len(f.directives[i].Module) < len(f.directives[j].Module)
	})
}
