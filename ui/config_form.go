package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/adamlewis-97/timestableworksheet/internal/cli"
	"github.com/adamlewis-97/timestableworksheet/internal/layout"
	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// ConfigForm holds the GUI form fields for worksheet setup.
type ConfigForm struct {
	tableChecks   []*widget.Check // index i holds the check for table i+1
	countEntry    *widget.Entry
	divisionCheck *widget.Check
	form          *fyne.Container
}

// NewConfigForm creates the worksheet setup form with default values.
func NewConfigForm() *ConfigForm {
	cf := &ConfigForm{}

	cf.tableChecks = make([]*widget.Check, model.MaxTable)
	checkBoxes := make([]fyne.CanvasObject, model.MaxTable)
	for i := range cf.tableChecks {
		check := widget.NewCheck(strconv.Itoa(i+1), nil)
		cf.tableChecks[i] = check
		checkBoxes[i] = check
	}

	selectAllBtn := widget.NewButton("All", func() { cf.setAllTables(true) })
	clearBtn := widget.NewButton("None", func() { cf.setAllTables(false) })

	cf.countEntry = widget.NewEntry()
	cf.countEntry.SetText("20")

	cf.divisionCheck = widget.NewCheck("Include division", nil)

	tables := container.NewVBox(
		container.NewGridWithColumns(5, checkBoxes...),
		container.NewHBox(selectAllBtn, clearBtn),
	)

	options := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Questions", cf.countEntry),
		),
		cf.divisionCheck,
	)

	accordion := widget.NewAccordion(
		widget.NewAccordionItem("Times Tables", tables),
		widget.NewAccordionItem("Options", options),
	)
	accordion.MultiOpen = true
	accordion.Open(0)
	accordion.Open(1)

	cf.form = container.NewVBox(accordion)

	return cf
}

// Container returns the form's Fyne container.
func (cf *ConfigForm) Container() *fyne.Container {
	return cf.form
}

// SelectedTables returns the checked table numbers in ascending order.
func (cf *ConfigForm) SelectedTables() []int {
	var tables []int
	for i, check := range cf.tableChecks {
		if check.Checked {
			tables = append(tables, i+1)
		}
	}
	return tables
}

func (cf *ConfigForm) setAllTables(checked bool) {
	for _, check := range cf.tableChecks {
		check.SetChecked(checked)
	}
}

// LoadPreferences restores form values from persistent preferences.
func (cf *ConfigForm) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String("config.tables"); v != "" {
		for _, n := range parseTableList(v) {
			cf.tableChecks[n-1].SetChecked(true)
		}
	}
	if v := prefs.String("config.count"); v != "" {
		cf.countEntry.SetText(v)
	}
	cf.divisionCheck.SetChecked(prefs.Bool("config.division"))
}

// SavePreferences persists form values to preferences.
func (cf *ConfigForm) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString("config.tables", formatTableList(cf.SelectedTables()))
	prefs.SetString("config.count", cf.countEntry.Text)
	prefs.SetBool("config.division", cf.divisionCheck.Checked)
}

// Config builds a generation config from the current form values.
// The question count is validated here so bad input surfaces in the UI
// before anything is generated.
func (cf *ConfigForm) Config() (cli.RunnerConfig, error) {
	count, err := parseIntInRange(cf.countEntry.Text,
		layout.MinQuestions, layout.MaxQuestions, "questions")
	if err != nil {
		return cli.RunnerConfig{}, err
	}

	return cli.RunnerConfig{
		Tables:       cf.SelectedTables(),
		Count:        count,
		WithDivision: cf.divisionCheck.Checked,
	}, nil
}
