package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chemaware/catalog/internal/domain"
	"github.com/chemaware/catalog/internal/usecase"
)

// Mode is the screen currently shown
type Mode int

const (
	ListMode Mode = iota
	SearchMode
	DetailMode
	FavoritesMode
	CompareMode
)

// Model is the catalog browser TUI. All state lives in the Browser; the
// model only tracks the cursor and which screen is shown.
type Model struct {
	ctx      context.Context
	browser  *usecase.Browser
	keys     keyMap
	help     help.Model
	input    textinput.Model
	mode     Mode
	back     Mode
	page     domain.Page
	selected int

	favorites   []domain.Product
	favSelected int

	detail domain.ProductDetail
	left   domain.Product
	right  domain.Product

	width     int
	height    int
	statusMsg string
	err       error

	// changed is signalled by the browser after every state change
	changed chan struct{}
}

// pageChangedMsg reports that the browser state changed, possibly from
// another surface sharing the same browser
type pageChangedMsg struct{}

func waitForChange(changed <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-changed
		return pageChangedMsg{}
	}
}

// NewModel creates a Model over browser
func NewModel(ctx context.Context, browser *usecase.Browser) Model {
	ti := textinput.New()
	ti.Placeholder = "search name, description, usage"
	ti.Prompt = "/ "
	ti.CharLimit = 80
	ti.SetValue(browser.State().SearchText)

	h := help.New()
	h.Styles.ShortKey = TitleStyle
	h.Styles.ShortDesc = MutedStyle
	h.Styles.FullKey = TitleStyle
	h.Styles.FullDesc = MutedStyle

	changed := make(chan struct{}, 1)
	browser.Subscribe(func(domain.Page) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	return Model{
		changed:   changed,
		ctx:       ctx,
		browser:   browser,
		keys:      keys,
		help:      h,
		input:     ti,
		mode:      ListMode,
		page:      browser.View(),
		statusMsg: "Ready",
	}
}

// Mode returns the screen currently shown
func (m Model) Mode() Mode {
	return m.mode
}

// Selected returns the product under the cursor in the card list
func (m Model) Selected() (domain.Product, bool) {
	if m.selected < 0 || m.selected >= len(m.page.Items) {
		return domain.Product{}, false
	}
	return m.page.Items[m.selected], true
}

// Page returns the page currently rendered
func (m Model) Page() domain.Page {
	return m.page
}

// Status returns the status bar text
func (m Model) Status() string {
	return m.statusMsg
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.changed)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageChangedMsg:
		m.setPage(m.browser.View())
		if m.mode == FavoritesMode {
			m.favorites = m.browser.Favorites()
			m.favSelected = min(m.favSelected, max(len(m.favorites)-1, 0))
		}
		return m, waitForChange(m.changed)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		if m.mode == SearchMode {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.mode {
		case ListMode:
			return m.updateList(msg)
		case DetailMode:
			return m.updateDetail(msg)
		case FavoritesMode:
			return m.updateFavorites(msg)
		case CompareMode:
			if key.Matches(msg, m.keys.Back) {
				m.mode = ListMode
				m.statusMsg = m.pageStatus()
			} else if key.Matches(msg, m.keys.ClearPair) {
				m.browser.ClearCompare()
				m.mode = ListMode
				m.setPage(m.browser.View())
				m.statusMsg = "Compare cleared"
			}
			return m, nil
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.input.Blur()
		m.mode = ListMode
		m.statusMsg = m.pageStatus()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.browser.State().SearchText {
		m.setPage(m.browser.SetSearch(m.input.Value()))
		m.statusMsg = m.pageStatus()
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.page.Items)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.PrevPage):
		m.setPage(m.browser.PrevPage())
		m.statusMsg = m.pageStatus()
	case key.Matches(msg, m.keys.NextPage):
		m.setPage(m.browser.NextPage())
		m.statusMsg = m.pageStatus()
	case key.Matches(msg, m.keys.Search):
		m.mode = SearchMode
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Eco):
		m.setPage(m.browser.SetEcoOnly(!m.browser.State().EcoOnly))
		m.statusMsg = m.pageStatus()
	case key.Matches(msg, m.keys.Sort):
		m.setPage(m.browser.SetSort(nextSortKey(m.browser.State().Sort)))
		m.statusMsg = "Sorted by " + m.browser.State().Sort.String()
	case key.Matches(msg, m.keys.Enter):
		if p, ok := m.Selected(); ok {
			m.openDetail(p.Identifier(), ListMode)
		}
	case key.Matches(msg, m.keys.Favorite):
		if p, ok := m.Selected(); ok {
			m.toggleFavorite(p)
		}
	case key.Matches(msg, m.keys.Compare):
		if p, ok := m.Selected(); ok {
			m.toggleCompare(p)
		}
	case key.Matches(msg, m.keys.Favorites):
		m.favorites = m.browser.Favorites()
		m.favSelected = 0
		m.mode = FavoritesMode
		m.statusMsg = fmt.Sprintf("%d favorites", len(m.favorites))
	case key.Matches(msg, m.keys.ShowPair):
		left, right, err := m.browser.ComparePair()
		if err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		m.left, m.right = left, right
		m.mode = CompareMode
		m.statusMsg = "Comparing " + left.Name + " and " + right.Name
	case key.Matches(msg, m.keys.ClearPair):
		m.browser.ClearCompare()
		m.setPage(m.browser.View())
		m.statusMsg = "Compare cleared"
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = m.back
		if m.mode == FavoritesMode {
			m.favorites = m.browser.Favorites()
			m.favSelected = min(m.favSelected, max(len(m.favorites)-1, 0))
		}
		m.setPage(m.browser.View())
		m.statusMsg = m.pageStatus()
	case key.Matches(msg, m.keys.Favorite):
		m.toggleFavorite(m.detail.Product)
		m.refreshDetail()
	case key.Matches(msg, m.keys.Compare):
		m.toggleCompare(m.detail.Product)
		m.refreshDetail()
	}
	return m, nil
}

func (m Model) updateFavorites(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = ListMode
		m.setPage(m.browser.View())
		m.statusMsg = m.pageStatus()
	case key.Matches(msg, m.keys.Up):
		if m.favSelected > 0 {
			m.favSelected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.favSelected < len(m.favorites)-1 {
			m.favSelected++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.favSelected < len(m.favorites) {
			m.openDetail(m.favorites[m.favSelected].Identifier(), FavoritesMode)
		}
	case key.Matches(msg, m.keys.Favorite):
		if m.favSelected < len(m.favorites) {
			m.toggleFavorite(m.favorites[m.favSelected])
			m.favorites = m.browser.Favorites()
			m.favSelected = min(m.favSelected, max(len(m.favorites)-1, 0))
		}
	}
	return m, nil
}

func (m *Model) setPage(page domain.Page) {
	m.page = page
	if m.selected >= len(page.Items) {
		m.selected = max(len(page.Items)-1, 0)
	}
}

func (m *Model) openDetail(identifier string, back Mode) {
	detail, err := m.browser.Details(identifier)
	if err != nil {
		m.err = err
		return
	}
	m.detail = detail
	m.back = back
	m.mode = DetailMode
	m.err = nil
	m.statusMsg = detail.Product.Name
}

// refreshDetail reloads the shown detail's flags, keeping the status line
func (m *Model) refreshDetail() {
	if detail, err := m.browser.Details(m.detail.Product.Identifier()); err == nil {
		m.detail = detail
	}
}

func (m *Model) toggleFavorite(p domain.Product) {
	on, err := m.browser.ToggleFavorite(m.ctx, p.Identifier())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	if on {
		m.statusMsg = "Added " + p.Name + " to favorites"
	} else {
		m.statusMsg = "Removed " + p.Name + " from favorites"
	}
}

func (m *Model) toggleCompare(p domain.Product) {
	on, err := m.browser.ToggleCompare(p.Identifier())
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	if on {
		m.statusMsg = fmt.Sprintf("Comparing %d/%d", len(m.browser.CompareSelection()), usecase.MaxCompare)
	} else {
		m.statusMsg = "Removed " + p.Name + " from compare"
	}
}

func (m Model) pageStatus() string {
	return fmt.Sprintf("Page %d of %d · %d products", m.page.Page, m.page.TotalPages, m.page.Total)
}

// nextSortKey cycles through domain.SortKeys
func nextSortKey(current domain.SortKey) domain.SortKey {
	for i, k := range domain.SortKeys {
		if k == current {
			return domain.SortKeys[(i+1)%len(domain.SortKeys)]
		}
	}
	return domain.SortKeys[0]
}

// View renders the UI
func (m Model) View() string {
	var sections []string

	switch m.mode {
	case ListMode, SearchMode:
		sections = append(sections, m.renderHeader(), m.renderList())
	case DetailMode:
		sections = append(sections, m.renderDetail())
	case FavoritesMode:
		sections = append(sections, TitleStyle.Render("Favorites"), m.renderFavorites())
	case CompareMode:
		sections = append(sections, TitleStyle.Render("Compare"), m.renderCompare())
	}

	if m.err != nil {
		sections = append(sections, ErrorStyle.Render("Error: "+m.err.Error()))
	} else {
		sections = append(sections, StatusBarStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	state := m.browser.State()
	eco := "off"
	if state.EcoOnly {
		eco = "on"
	}
	info := HeaderStyle.Render(fmt.Sprintf("eco: %s · sort: %s · ♥ %d · compare %d/%d",
		eco, state.Sort, m.browser.FavoriteCount(), len(m.browser.CompareSelection()), usecase.MaxCompare))

	search := m.input.View()
	if m.mode != SearchMode && state.SearchText == "" {
		search = MutedStyle.Render("press / to search")
	}
	return TitleStyle.Render("ChemAware") + "  " + info + "\n" + search
}

func (m Model) renderList() string {
	if len(m.page.Items) == 0 {
		return MutedStyle.Render("No products match the current filters.")
	}

	var b strings.Builder
	for i, p := range m.page.Items {
		b.WriteString(m.renderCard(p, i == m.selected))
		b.WriteString("\n")
	}
	b.WriteString(MutedStyle.Render(pagerLine(m.page)))
	return b.String()
}

func (m Model) renderCard(p domain.Product, selected bool) string {
	var marks []string
	if p.Eco {
		marks = append(marks, EcoBadgeStyle.Render("eco"))
	}
	if m.browser.IsFavorite(p.Identifier()) {
		marks = append(marks, TitleStyle.Render("♥"))
	}
	if m.browser.IsComparing(p.Identifier()) {
		marks = append(marks, NameStyle.Render("⇄"))
	}

	line1 := lipgloss.JoinHorizontal(lipgloss.Left,
		NameStyle.Render(p.Name), " ", hazardMeter(p.Hazard), " ", strings.Join(marks, " "))
	line2 := MutedStyle.Render(truncate(p.Usage, max(m.width-4, 40)))
	card := line1 + "\n" + line2
	if selected {
		return SelectedItemStyle.Render(card)
	}
	return ItemStyle.Render(card)
}

func (m Model) renderDetail() string {
	p := m.detail.Product
	var b strings.Builder
	b.WriteString(TitleStyle.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(p.Identifier()))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Hazard   %s\n", hazardMeter(p.Hazard))
	fmt.Fprintf(&b, "Eco      %s\n", yesNo(p.Eco))
	fmt.Fprintf(&b, "Usage    %s\n", p.Usage)
	fmt.Fprintf(&b, "Effects  %s\n", p.Effects)
	fmt.Fprintf(&b, "Safety   %s\n", p.Safety)
	if p.Description != "" {
		b.WriteString("\n")
		b.WriteString(p.Description)
		b.WriteString("\n")
	}
	if p.Image != "" {
		b.WriteString(MutedStyle.Render(p.Image))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Favorite %s · Comparing %s", yesNo(m.detail.Favorite), yesNo(m.detail.Comparing))
	return PanelStyle.Render(b.String())
}

func (m Model) renderFavorites() string {
	if len(m.favorites) == 0 {
		return MutedStyle.Render("No favorites yet. Press f on a product to add it.")
	}
	var b strings.Builder
	for i, p := range m.favorites {
		b.WriteString(m.renderCard(p, i == m.favSelected))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCompare() string {
	width := 36
	if m.width > 0 {
		width = max((m.width-6)/2, 24)
	}
	column := func(p domain.Product) string {
		body := fmt.Sprintf("%s\n%s\n\nHazard  %s\nEco     %s\n\nUsage\n%s\n\nEffects\n%s\n\nSafety\n%s",
			NameStyle.Render(p.Name), MutedStyle.Render(string(p.Source)),
			hazardMeter(p.Hazard), yesNo(p.Eco), p.Usage, p.Effects, p.Safety)
		return PanelStyle.Width(width).Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, column(m.left), " ", column(m.right))
}

func pagerLine(page domain.Page) string {
	prev, next := "  ", "  "
	if page.HasPrev {
		prev = "← "
	}
	if page.HasNext {
		next = " →"
	}
	return fmt.Sprintf("%sPage %d of %d%s", prev, page.Page, page.TotalPages, next)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// Run starts the full-screen browser and blocks until the user quits
func Run(ctx context.Context, browser *usecase.Browser) error {
	_, err := tea.NewProgram(NewModel(ctx, browser), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
