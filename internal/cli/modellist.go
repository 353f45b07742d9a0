package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/fuelr/internal/model"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)
)

type modelItem struct {
	model model.FuelModel
}

func (i modelItem) Title() string {
	lock := ""
	if i.model.Private {
		lock = "🔒 "
	}

	return fmt.Sprintf("%s%s/%s", lock, i.model.Owner, i.model.Name)
}

func (i modelItem) Description() string {
	desc := fmt.Sprintf("%d downloads | %d likes", i.model.Downloads, i.model.Likes)

	if len(i.model.Tags) > 0 {
		desc = fmt.Sprintf("%s | %s", desc, strings.Join(i.model.Tags, ", "))
	}

	return desc
}

func (i modelItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.model.Owner, i.model.Name, strings.Join(i.model.Tags, " "))
}

type ModelListModel struct {
	list          list.Model
	selectedModel *model.FuelModel
	quitting      bool
}

func (m ModelListModel) Init() tea.Cmd {
	return nil
}

func (m ModelListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(modelItem)
			if ok {
				m.selectedModel = &i.model
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ModelListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// GetSelectedModel returns the record picked with enter, or nil when the
// list was dismissed.
func (m ModelListModel) GetSelectedModel() *model.FuelModel {
	return m.selectedModel
}

// NewModelList builds the interactive catalog browser over the given
// records.
func NewModelList(models []model.FuelModel, title string) ModelListModel {
	items := make([]list.Item, len(models))
	for i, mdl := range models {
		items[i] = modelItem{model: mdl}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title

	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return ModelListModel{list: l}
}
