package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/inventory"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var shortageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// InventoryModel shows stored inventory rows with their shortages.
type InventoryModel struct {
	rows     []storage.InventoryRow
	table    table.Model
	help     help.Model
	keys     TableKeyMap
	width    int
	quitting bool
}

// NewInventoryModel creates the inventory screen.
func NewInventoryModel(rows []storage.InventoryRow, width, height int) InventoryModel {
	m := InventoryModel{
		rows:  rows,
		keys:  DefaultTableKeyMap(),
		help:  help.New(),
		width: width,
	}
	m.table = newTable([]table.Column{
		{Title: "Product", Width: 24},
		{Title: "Stock", Width: 10},
		{Title: "Required", Width: 10},
		{Title: "Shortage", Width: 10},
	}, height-8)
	m.table.SetRows(InventoryRows(rows))
	return m
}

// InventoryRows formats stored rows for the table.
func InventoryRows(rows []storage.InventoryRow) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row{
			r.Item.Name,
			inventory.FormatQuantity(float64(r.Item.Stock)),
			inventory.FormatQuantity(float64(r.Item.Required)),
			inventory.FormatQuantity(r.Shortage),
		}
	}
	return out
}

// TotalShortage sums the stored shortages.
func (m InventoryModel) TotalShortage() float64 {
	total := 0.0
	for _, r := range m.rows {
		total += r.Shortage
	}
	return total
}

// Init initializes the inventory model.
func (m InventoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the inventory screen.
func (m InventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetHeight(max(msg.Height-8, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the inventory table and the total shortage.
func (m InventoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("INVENTORY", m.width)))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(boxStyle.Render(emptyStyle.Render("No items stored.\nUse 'arcade inventory import' or 'add'.")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(shortageStyle.Render(fmt.Sprintf("Total shortage: %s", inventory.FormatQuantity(m.TotalShortage()))))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunInventory runs the inventory screen until the user quits.
func RunInventory(rows []storage.InventoryRow, width, height int) error {
	p := tea.NewProgram(NewInventoryModel(rows, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
