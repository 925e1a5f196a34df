package cmd_trie

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rskv-p/ptrie/config"
	"github.com/rskv-p/ptrie/pkg/x_log"
)

// view renders command results. Colors are dropped when the output is not
// a terminal or the config asks for plain text.
type view struct {
	out     io.Writer
	noColor bool

	title lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
	miss  lipgloss.Style
	fail  lipgloss.Style
	info  lipgloss.Style
}

func newView(w io.Writer, cfg *config.Config) *view {
	v := &view{
		out:     w,
		noColor: cfg.NoColor || !isTerminal(w),
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(x_log.ColorBlue60)),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorTeal40)),
		value:   lipgloss.NewStyle().Bold(true),
		miss:    lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60)),
		fail:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(x_log.ColorRed60)),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorOrange40)),
	}
	if strings.EqualFold(cfg.LogStyle, "light") {
		v.key = v.key.Foreground(lipgloss.Color(x_log.ColorBlue70))
		v.value = v.value.Foreground(lipgloss.Color(x_log.ColorGray90))
	}
	return v
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (v *view) render(st lipgloss.Style, s string) string {
	if v.noColor {
		return s
	}
	return st.Render(s)
}

func (v *view) println(parts ...string) {
	fmt.Fprintln(v.out, strings.Join(parts, " "))
}

// Title prints a section header.
func (v *view) Title(s string) {
	v.println(v.render(v.title, "== "+s+" =="))
}

// Hit prints "[label: value] key".
func (v *view) Hit(label string, val int, key string) {
	v.println("["+label+": "+v.render(v.value, strconv.Itoa(val))+"]", v.render(v.key, key))
}

// Miss prints "[label: -] key".
func (v *view) Miss(label, key string) {
	v.println("["+label+": "+v.render(v.miss, "-")+"]", v.render(v.key, key))
}

// Match prints "[value] key".
func (v *view) Match(val int, key string) {
	v.println("["+v.render(v.value, strconv.Itoa(val))+"]", v.render(v.key, key))
}

// Values prints "label: v1 v2 ..." or "label: -" when vals is empty.
func (v *view) Values(label string, vals []int) {
	if len(vals) == 0 {
		v.println(v.render(v.key, label)+":", v.render(v.miss, "-"))
		return
	}
	parts := make([]string, 0, len(vals)+1)
	parts = append(parts, v.render(v.key, label)+":")
	for _, n := range vals {
		parts = append(parts, v.render(v.value, strconv.Itoa(n)))
	}
	v.println(parts...)
}

// Info prints a status line.
func (v *view) Info(format string, args ...any) {
	v.println(v.render(v.info, fmt.Sprintf(format, args...)))
}

// Error prints an error line.
func (v *view) Error(err error) {
	v.println(v.render(v.fail, "error: "+err.Error()))
}

// Plain writes s untouched.
func (v *view) Plain(s string) {
	fmt.Fprint(v.out, s)
}
