package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/fancyactive/backstage/internal/copywriter"
)

// productFieldCount covers name, features, image path.
const productFieldCount = 3

// productForm holds the copy-generator form state. The uploaded image
// is previewed by name and size only; the file itself is never read
// into the application or copied anywhere.
type productForm struct {
	nameInput     textinput.Model
	featuresInput textarea.Model
	imageInput    textinput.Model

	focusIdx int
	editing  bool

	result  string
	warning string
}

func newProductForm() productForm {
	name := textinput.New()
	name.Placeholder = "商品名稱"
	name.CharLimit = 60
	name.Width = 40

	features := textarea.New()
	features.Placeholder = "商品特色（用逗號分隔）"
	features.SetValue(copywriter.DefaultFeatures)
	features.SetHeight(3)
	features.SetWidth(40)
	features.ShowLineNumbers = false

	image := textinput.New()
	image.Placeholder = "商品圖片路徑（選填）"
	image.CharLimit = 200
	image.Width = 40

	return productForm{
		nameInput:     name,
		featuresInput: features,
		imageInput:    image,
	}
}

func (f *productForm) resize(width int) {
	w := width - 40
	if w < 30 {
		w = 30
	}
	if w > 72 {
		w = 72
	}
	f.nameInput.Width = w
	f.imageInput.Width = w
	f.featuresInput.SetWidth(w)
}

// beginEdit focuses the first field.
func (f *productForm) beginEdit() {
	f.editing = true
	f.focusIdx = 0
	f.applyFocus()
}

func (f *productForm) endEdit() {
	f.editing = false
	f.nameInput.Blur()
	f.featuresInput.Blur()
	f.imageInput.Blur()
}

func (f *productForm) cycleFocus(delta int) {
	f.focusIdx = (f.focusIdx + delta + productFieldCount) % productFieldCount
	f.applyFocus()
}

func (f *productForm) applyFocus() {
	f.nameInput.Blur()
	f.featuresInput.Blur()
	f.imageInput.Blur()
	switch f.focusIdx {
	case 0:
		f.nameInput.Focus()
	case 1:
		f.featuresInput.Focus()
	case 2:
		f.imageInput.Focus()
	}
}

// generate runs the copywriter over the current form values.
func (f *productForm) generate() error {
	text, err := copywriter.Generate(f.nameInput.Value(), f.featuresInput.Value())
	if err != nil {
		f.result = ""
		f.warning = err.Error()
		return err
	}
	f.result = text
	f.warning = ""
	return nil
}

// handleProductKey processes keys for the product view outside edit mode.
func (m Model) handleProductKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Confirm):
		m.form.beginEdit()
	case key.Matches(msg, m.keys.Generate):
		if err := m.form.generate(); err != nil {
			m.logger.Info("copy generation rejected", zap.String("reason", err.Error()))
		} else {
			m.logger.Info("copy generated", zap.String("product", strings.TrimSpace(m.form.nameInput.Value())))
		}
	}
	return m, nil
}

// handleFormKey processes keys while the form owns the keyboard. The
// quit binding stays out of here so "q" can be typed into a field.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.form.endEdit()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.form.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.form.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if err := m.form.generate(); err != nil {
			m.logger.Info("copy generation rejected", zap.String("reason", err.Error()))
			return m, nil
		}
		m.form.endEdit()
		m.logger.Info("copy generated", zap.String("product", strings.TrimSpace(m.form.nameInput.Value())))
		return m, nil
	}

	// Route everything else to the focused field
	var cmd tea.Cmd
	switch m.form.focusIdx {
	case 0:
		m.form.nameInput, cmd = m.form.nameInput.Update(msg)
	case 1:
		m.form.featuresInput, cmd = m.form.featuresInput.Update(msg)
	case 2:
		m.form.imageInput, cmd = m.form.imageInput.Update(msg)
	}
	return m, cmd
}

// renderProduct renders the upload form and the generated copy.
func (m Model) renderProduct(width int) string {
	styles := m.theme.Styles()
	f := m.form

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("🛍 商品上傳與 AI 文案生成"))
	b.WriteString("\n\n")

	label := func(idx int, text string) string {
		if f.editing && f.focusIdx == idx {
			return styles.AccentText.Render(text)
		}
		return styles.MutedText.Render(text)
	}

	b.WriteString(label(0, "商品名稱　　"))
	b.WriteString(f.nameInput.View())
	b.WriteString("\n\n")

	b.WriteString(label(1, "商品特色　　"))
	b.WriteString("\n")
	b.WriteString(f.featuresInput.View())
	b.WriteString("\n\n")

	b.WriteString(label(2, "商品圖片　　"))
	b.WriteString(f.imageInput.View())
	b.WriteString("\n")
	b.WriteString(m.renderImagePreview())
	b.WriteString("\n")

	if f.warning != "" {
		b.WriteString(styles.WarningText.Render("⚠ " + f.warning))
		b.WriteString("\n")
	}

	if f.result != "" {
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.theme.Accent)).
			Padding(0, 1).
			Width(width - 2).
			Render(styles.Text.Render(f.result))
		b.WriteString("\n")
		b.WriteString(card)
	}

	return b.String()
}

// renderImagePreview shows the chosen file's name and size. The preview
// is informational only.
func (m Model) renderImagePreview() string {
	styles := m.theme.Styles()

	path := strings.TrimSpace(m.form.imageInput.Value())
	if path == "" {
		return ""
	}

	info, err := os.Stat(path)
	if err != nil {
		return styles.FaintText.Render("　　　　　　找不到圖片檔案")
	}
	return styles.FaintText.Render(fmt.Sprintf("　　　　　　商品圖片預覽：%s（%d bytes）", info.Name(), info.Size()))
}
