package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/hinahinako39/hour-percent-clock/internal/config"
	"github.com/hinahinako39/hour-percent-clock/internal/engine"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	darkCheck  *widget.Check
	langSelect *widget.Select
}

// ShowSettingsWindow displays the configuration dialog.
// It implements a singleton pattern: if the window is already open, it
// requests focus instead of opening a second copy.
func (app *HourClockApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenSettings, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := &settingsWidgets{}

	// --- 1. General Section (Theme & Language) ---
	sw.darkCheck = widget.NewCheck(app.GetMsg(config.TKeyLblDarkTheme), nil)
	sw.darkCheck.Checked = app.Preferences.StringWithFallback(config.PrefTheme, config.DefaultTheme) != config.ThemeLight

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	itemTheme := widget.NewFormItem("", sw.darkCheck)
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	generalForm := widget.NewForm(itemTheme, itemLang)
	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", generalForm)

	// --- 2. Data Section (vCard Import & Calendar Export) ---
	btnImport := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImportVCard), theme.FolderOpenIcon(), func() {
		app.importBirthdayFromVCard(w)
	})
	btnExport := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportICS), theme.DocumentSaveIcon(), func() {
		app.exportMilestoneCalendar(w)
	})
	dataCard := widget.NewCard(app.GetMsg(config.TKeyLblData), "", container.NewVBox(btnImport, btnExport))

	// --- Actions ---
	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.ConfirmIcon(), func() {
		app.saveSettings(sw, w)
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		dataCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// saveSettings persists the choices synchronously and applies them at once.
func (app *HourClockApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	themeName := config.ThemeLight
	if sw.darkCheck.Checked {
		themeName = config.ThemeDark
	}
	app.Preferences.SetString(config.PrefTheme, themeName)
	app.applyTheme()
	slog.Info(config.MsgThemeUpdated,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyTheme, themeName)

	if lang := sw.langSelect.Selected; lang != "" {
		app.Preferences.SetString(config.PrefLanguage, lang)
		app.UpdateLocalizer()
		app.refreshStaticTexts()
	}

	w.Close()
}

// importBirthdayFromVCard lets the user pick a local .vcf file and adopts the
// first full birth date it contains.
func (app *HourClockApp) importBirthdayFromVCard(parent fyne.Window) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			if err != nil {
				dialog.ShowError(fmt.Errorf("%s: %w", config.ErrImportOpen, err), parent)
			}
			return
		}
		defer func() { _ = reader.Close() }()

		birth, err := engine.ReadBirthDateFromVCard(reader)
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}

		iso := birth.Format(config.DateFormatISO)
		app.setBirthDateValue(iso)
		app.saveBirthDate(iso)
		app.birthEntry.SetText(iso)
		app.render(engine.ComputeSnapshot(app.Clock.Now(), iso))

		slog.Info(config.MsgImportDone,
			config.LogKeyComponent, config.CompUISet,
			config.LogKeyDOB, iso)
		dialog.ShowInformation(config.AppName, app.GetMsg(config.TKeyMsgImported), parent)
	}, parent)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	fileDialog.Show()
}

// exportMilestoneCalendar writes the next milestones as an .ics file chosen
// by the user.
func (app *HourClockApp) exportMilestoneCalendar(parent fyne.Window) {
	birthValue := app.birthDateValue()
	birth, err := engine.ParseBirthDate(birthValue)
	if err != nil {
		dialog.ShowError(errors.New(config.ErrNoLifeStats), parent)
		return
	}

	ics, err := engine.BuildMilestoneCalendar(
		app.Clock.Now(), birth, config.MilestoneWindowCount,
		app.milestoneSummaryFormatter())
	if err != nil {
		dialog.ShowError(err, parent)
		return
	}

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			if err != nil {
				dialog.ShowError(fmt.Errorf("%s: %w", config.ErrExportWrite, err), parent)
			}
			return
		}
		defer func() { _ = writer.Close() }()

		if _, err := writer.Write(ics); err != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", config.ErrExportWrite, err), parent)
			return
		}

		slog.Info(config.MsgExportDone,
			config.LogKeyComponent, config.CompUISet,
			config.LogKeyFile, writer.URI().String(),
			config.LogKeySizeBytes, len(ics))
	}, parent)

	fileDialog.SetFileName(config.ICalCalName + config.ExtICS)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	fileDialog.Show()
}
