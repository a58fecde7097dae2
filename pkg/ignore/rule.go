package ignore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// ErrInvalidPattern reports a pattern that cannot be compiled into a matcher.
var ErrInvalidPattern = errors.New("invalid ignore pattern")

// Rule is one compiled gitignore-style pattern.
type Rule struct {
	Line    string // pattern text with negation, anchoring and escapes resolved
	Negate  bool   // leading '!' re-includes matching paths
	DirOnly bool   // trailing '/' restricts the rule to directories

	self    []glob.Glob // match the path itself
	subtree []glob.Glob // match everything beneath a matched directory
}

// ParseRule parses one gitignore-style line into a compiled rule. Blank
// lines and comments yield (nil, nil).
//
// The dialect is the usual one: '#' comments, '!' negation, a trailing '/'
// for directory-only rules, anchoring to the root when the pattern contains
// a non-trailing '/', and backslash escapes for '#', '!' and ' '. Wildcards
// '*' and '?' stop at path separators; '**' crosses them.
func ParseRule(line string) (*Rule, error) {
	text := strings.TrimSuffix(line, "\r")
	if text == "" || strings.HasPrefix(text, "#") {
		return nil, nil
	}
	text = stripTrailingSpace(text)

	negate := false
	if strings.HasPrefix(text, "!") {
		negate = true
		text = text[1:]
	}

	dirOnly := false
	if strings.HasSuffix(text, "/") {
		dirOnly = true
		text = strings.TrimSuffix(text, "/")
	}

	anchored := false
	if strings.HasPrefix(text, "/") {
		anchored = true
		text = text[1:]
	} else if strings.Contains(text, "/") {
		anchored = true
	}

	text = unescape(text)
	if text == "" {
		return nil, nil
	}

	rule := &Rule{Line: text, Negate: negate, DirOnly: dirOnly}
	if err := rule.compile(anchored); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, strings.TrimSpace(line), err)
	}
	return rule, nil
}

// Match reports whether the rule matches relPath, a slash-separated path
// relative to the pattern root. Directory-only rules match the directory
// itself and everything beneath it, but never a plain file of the same name.
func (r *Rule) Match(relPath string, isDir bool) bool {
	if matchAny(r.self, relPath) {
		return !r.DirOnly || isDir
	}
	return matchAny(r.subtree, relPath)
}

// compile builds the self and subtree matchers. The subtree matchers cover
// paths below a directory the rule names, which is how a single pattern
// excludes a whole tree.
//
// An unanchored rule needs both a bare and a "**/"-prefixed form, since a
// lone "**/p" never matches a root-level p. The forms are compiled as
// separate globs, not one brace alternation: glob mishandles '**' inside
// an alternation whose other branch carries a wildcard, so
// "{*.log,**/*.log}" stops matching more than one directory deep.
func (r *Rule) compile(anchored bool) error {
	p := escapeForGlob(r.Line)
	selfExprs := []string{p}
	subExprs := []string{p + "/**"}
	if !anchored {
		selfExprs = append(selfExprs, "**/"+p)
		subExprs = append(subExprs, "**/"+p+"/**")
	}

	self, err := compileAll(selfExprs)
	if err != nil {
		return err
	}
	subtree, err := compileAll(subExprs)
	if err != nil {
		return err
	}
	r.self = self
	r.subtree = subtree
	return nil
}

// compileAll compiles every expression with '/' as the separator.
func compileAll(exprs []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(exprs))
	for _, expr := range exprs {
		g, err := glob.Compile(expr, '/')
		if err != nil {
			return nil, err
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// matchAny reports whether any glob matches path.
func matchAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// escapeForGlob neutralizes the glob syntax gitignore does not have. Brace
// alternates and their comma separators belong to the matcher library, not
// to pattern files.
func escapeForGlob(p string) string {
	p = strings.ReplaceAll(p, "{", "\\{")
	p = strings.ReplaceAll(p, "}", "\\}")
	p = strings.ReplaceAll(p, ",", "\\,")
	return p
}

// stripTrailingSpace drops unescaped trailing spaces.
func stripTrailingSpace(s string) string {
	for strings.HasSuffix(s, " ") && !strings.HasSuffix(s, "\\ ") {
		s = s[:len(s)-1]
	}
	return s
}

// unescape resolves the backslash escapes gitignore defines for '#', '!'
// and ' '. Any other backslash sequence is left for the glob compiler.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '#', '!', ' ':
				i++
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
