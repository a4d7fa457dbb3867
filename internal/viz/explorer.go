package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/floq/internal/floquet"
)

type explorer struct {
	title  string
	params *floquet.Params
	status string
}

func newExplorer(title string, p *floquet.Params) explorer {
	return explorer{title: title, params: p, status: "ready"}
}

// RunExplorer opens an interactive view of p. Keys change dim and nz in place
// through SetDim and SetNz, so p holds the last accepted values on return.
func RunExplorer(title string, p *floquet.Params) error {
	_, err := tea.NewProgram(newExplorer(title, p)).Run()
	return err
}

func (e explorer) Init() tea.Cmd { return nil }

func (e explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return e, tea.Quit
	case "+", "=":
		e.apply(e.params.SetDim(e.params.Dim() + 1))
	case "-", "_":
		e.apply(e.params.SetDim(e.params.Dim() - 1))
	case "]":
		e.apply(e.params.SetNz(e.params.Nz() + 2))
	case "[":
		e.apply(e.params.SetNz(e.params.Nz() - 2))
	}
	return e, nil
}

func (e *explorer) apply(err error) {
	if err != nil {
		e.status = Fail.Render(err.Error())
		return
	}
	e.status = Pass.Render("ok") + " " + Subtle.Render(e.params.String())
}

func (e explorer) View() string {
	var s strings.Builder
	s.WriteString(RenderParams(e.title, e.params) + "\n")
	s.WriteString(zoneStrip(e.params) + "\n\n")
	s.WriteString(e.status + "\n")
	s.WriteString(KeyHint.Render("+/- dim   [/] nz   q quit") + "\n")
	return s.String()
}

// zoneStrip lists each retained Fourier index with the first K-space row of
// its block.
func zoneStrip(p *floquet.Params) string {
	cells := make([]string, 0, p.Nz())
	for _, n := range p.ZoneIndices() {
		off, _ := p.ZoneOffset(n)
		cell := fmt.Sprintf("%+d@%d", n, off)
		if n == 0 {
			cell = Title.Render(cell)
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}
