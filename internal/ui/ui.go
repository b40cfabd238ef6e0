package ui

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/zalando/go-keyring"

	"github.com/hinahinako39/hour-percent-clock/internal/config"
	"github.com/hinahinako39/hour-percent-clock/internal/engine"
)

//go:embed Icon.png
var appIconData []byte

// HourClockApp encapsulates the UI state, preferences, and the refresh loop.
type HourClockApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock engine.Clock // Injected clock for testability

	SupportedLanguages []string

	// Application state. Held here explicitly and mutated only in response
	// to user edits; all derived values are recomputed by the stateless
	// engine every tick.
	birthMut  sync.RWMutex
	birthDate string // ISO YYYY-MM-DD, empty when unset
	mode      string // config.ModeDetailed or config.ModeCompact, not persisted

	rings          *ProgressRings
	timeLabel      *widget.Label
	hourLabel      *widget.Label
	dayLabel       *widget.Label
	dayBar         *widget.ProgressBar
	remainingLabel *widget.Label
	aliveLabel     *widget.Label
	milestoneLabel *widget.Label
	noteLabel      *widget.Label
	birthLabel     *widget.Label
	birthEntry     *DateEntry
	birthRow       fyne.CanvasObject
	toggleBtn      *widget.Button

	settingsWindow   fyne.Window
	milestonesWindow fyne.Window
}

// NewHourClockApp constructs the application and loads the persisted state.
func NewHourClockApp(a fyne.App, ctx context.Context) *HourClockApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	app := &HourClockApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              engine.RealClock{},
		SupportedLanguages: config.SupportedLanguages,
		mode:               config.ModeDetailed,
	}
	app.birthDate = app.loadBirthDate()
	return app
}

// Run launches the refresh worker and the main UI loop (blocks until the
// window closes).
func (app *HourClockApp) Run() {
	app.SetupI18n()
	app.applyTheme()
	app.buildMainWindow()

	go app.refreshWorker()
	app.Window.ShowAndRun()
}

// applyTheme pins the theme variant to the persisted preference.
// Dark is the documented default for any absent or unknown value.
func (app *HourClockApp) applyTheme() {
	name := app.Preferences.StringWithFallback(config.PrefTheme, config.DefaultTheme)
	app.App.Settings().SetTheme(newVariantTheme(name != config.ThemeLight))
}

// buildMainWindow assembles the clock layout: toolbar, timestamp, rings,
// progress texts, day bar, life statistics, birthday input and mode toggle.
func (app *HourClockApp) buildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w
	w.SetMaster()

	toolbar := widget.NewToolbar(
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.ListIcon(), app.ShowMilestonesWindow),
		widget.NewToolbarAction(theme.SettingsIcon(), app.ShowSettingsWindow),
	)

	app.timeLabel = widget.NewLabel(config.TimePlaceholder)
	app.timeLabel.Alignment = fyne.TextAlignCenter
	app.timeLabel.TextStyle = fyne.TextStyle{Bold: true}

	app.rings = NewProgressRings()

	app.hourLabel = widget.NewLabel("")
	app.hourLabel.Alignment = fyne.TextAlignCenter

	app.dayLabel = widget.NewLabel("")

	app.dayBar = widget.NewProgressBar()
	app.dayBar.TextFormatter = func() string { return "" }

	app.remainingLabel = widget.NewLabel("")
	app.aliveLabel = widget.NewLabel("")
	app.milestoneLabel = widget.NewLabel("")

	app.noteLabel = widget.NewLabel(app.GetMsg(config.TKeyNoteNoBirthday))
	app.noteLabel.TextStyle = fyne.TextStyle{Italic: true}
	app.noteLabel.Hide()

	app.birthLabel = widget.NewLabel(app.GetMsg(config.TKeyLblBirthday))
	app.birthEntry = NewDateEntry()
	app.birthEntry.SetText(app.birthDateValue())
	app.birthEntry.Validator = app.validateBirthInput
	app.birthEntry.OnSubmitted = app.commitBirthDate
	app.birthRow = container.NewBorder(nil, nil, app.birthLabel, nil, app.birthEntry)

	app.toggleBtn = widget.NewButton(app.GetMsg(config.TKeyBtnCompact), app.toggleMode)

	content := container.NewVBox(
		toolbar,
		app.timeLabel,
		container.NewCenter(app.rings),
		app.hourLabel,
		app.dayLabel,
		app.dayBar,
		app.remainingLabel,
		app.aliveLabel,
		app.milestoneLabel,
		app.noteLabel,
		app.birthRow,
		app.toggleBtn,
	)

	w.SetContent(container.NewPadded(content))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))

	// First paint without waiting for the worker's initial tick.
	app.render(engine.ComputeSnapshot(app.Clock.Now(), app.birthDateValue()))
}

// refreshWorker drives the once-per-second display updates. Each tick's
// writes complete on the UI thread before the next tick is processed, so
// ticks never overlap.
func (app *HourClockApp) refreshWorker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	ticker := time.NewTicker(config.RefreshInterval)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, config.RefreshInterval)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-ticker.C:
			snap := engine.ComputeSnapshot(app.Clock.Now(), app.birthDateValue())
			fyne.DoAndWait(func() {
				app.render(snap)
			})
		}
	}
}

// render writes one snapshot to the display surfaces. Must run on the UI
// thread.
func (app *HourClockApp) render(snap engine.Snapshot) {
	hourPct := formatPercent(snap.HourFraction)
	dayPct := formatPercent(snap.DayFraction)

	app.timeLabel.SetText(snap.Now.Format(config.TimestampLayout))
	app.rings.SetProgress(snap.HourFraction, snap.DayFraction, hourPct)

	app.hourLabel.SetText(app.GetMsgData(config.TKeyLblHourPct,
		map[string]interface{}{"Percent": hourPct}))
	app.dayLabel.SetText(app.GetMsgData(config.TKeyLblDayPct,
		map[string]interface{}{"Percent": dayPct}))
	app.dayBar.SetValue(snap.DayFraction)
	app.remainingLabel.SetText(app.GetMsgData(config.TKeyLblRemaining,
		map[string]interface{}{"Percent": formatPercent(1 - snap.DayFraction)}))

	alive := config.StatPlaceholder
	milestone := config.StatPlaceholder
	if snap.Life != nil {
		alive = strconv.Itoa(snap.Life.DaysAlive)
		milestone = strconv.Itoa(snap.Life.DaysToMilestone)
	}
	app.aliveLabel.SetText(app.GetMsgData(config.TKeyLblDaysAlive,
		map[string]interface{}{"Count": alive}))
	app.milestoneLabel.SetText(app.GetMsgData(config.TKeyLblMilestone,
		map[string]interface{}{"Count": milestone}))

	if snap.Life == nil && app.mode == config.ModeDetailed {
		app.noteLabel.Show()
	} else {
		app.noteLabel.Hide()
	}
}

// toggleMode switches between the detailed and compact layouts. The choice
// is deliberately not persisted and resets to detailed on restart.
func (app *HourClockApp) toggleMode() {
	if app.mode == config.ModeDetailed {
		app.mode = config.ModeCompact
		app.remainingLabel.Hide()
		app.aliveLabel.Hide()
		app.milestoneLabel.Hide()
		app.noteLabel.Hide()
		app.birthRow.Hide()
		app.toggleBtn.SetText(app.GetMsg(config.TKeyBtnDetailed))
	} else {
		app.mode = config.ModeDetailed
		app.remainingLabel.Show()
		app.aliveLabel.Show()
		app.milestoneLabel.Show()
		app.birthRow.Show()
		app.toggleBtn.SetText(app.GetMsg(config.TKeyBtnCompact))
	}

	slog.Info(config.MsgModeToggled,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyMode, app.mode)
}

// validateBirthInput accepts the empty string (clears the birthday) and any
// parseable ISO date that is not in the future.
func (app *HourClockApp) validateBirthInput(value string) error {
	if value == "" {
		return nil
	}
	birth, err := engine.ParseBirthDate(value)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrDateFormat))
	}
	if _, ok := engine.ComputeLifeStats(app.Clock.Now(), birth); !ok {
		return errors.New(app.GetMsg(config.TKeyErrDateFuture))
	}
	return nil
}

// commitBirthDate persists an edited birthday and refreshes the display
// immediately. Unparseable input is ignored, leaving the stored value
// untouched; the validator already gives visual feedback.
func (app *HourClockApp) commitBirthDate(value string) {
	if value == "" {
		app.setBirthDateValue("")
		app.saveBirthDate("")
		slog.Info(config.MsgBirthCleared, config.LogKeyComponent, config.CompUI)
	} else {
		if _, err := engine.ParseBirthDate(value); err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyValue, value)
			return
		}
		app.setBirthDateValue(value)
		app.saveBirthDate(value)
		slog.Info(config.MsgBirthUpdated,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyDOB, value)
	}

	app.render(engine.ComputeSnapshot(app.Clock.Now(), app.birthDateValue()))
}

// birthDateValue reads the current birth date string. The worker goroutine
// reads it every tick while the UI thread may be writing.
func (app *HourClockApp) birthDateValue() string {
	app.birthMut.RLock()
	defer app.birthMut.RUnlock()
	return app.birthDate
}

func (app *HourClockApp) setBirthDateValue(value string) {
	app.birthMut.Lock()
	app.birthDate = value
	app.birthMut.Unlock()
}

// loadBirthDate reads the stored birth date, preferring the OS keyring and
// falling back to the preference store. An unparseable stored value is
// treated as absent.
func (app *HourClockApp) loadBirthDate() string {
	value, err := keyring.Get(config.KeyringService, config.KeyringBirthUser)
	if err != nil {
		value = app.Preferences.String(config.PrefBirthDate)
	}
	if value == "" {
		return ""
	}
	if _, err := engine.ParseBirthDate(value); err != nil {
		slog.Warn(config.MsgSkippedDate,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, value)
		return ""
	}
	return value
}

// saveBirthDate persists the birth date synchronously on commit. The
// preference store is always written as well, so keyring-less systems and
// older installs stay consistent.
func (app *HourClockApp) saveBirthDate(value string) {
	if value == "" {
		if err := keyring.Delete(config.KeyringService, config.KeyringBirthUser); err != nil {
			slog.Debug(config.MsgKeyringMiss,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
		}
	} else {
		if err := keyring.Set(config.KeyringService, config.KeyringBirthUser, value); err != nil {
			slog.Debug(config.MsgKeyringMiss,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
		}
	}
	app.Preferences.SetString(config.PrefBirthDate, value)
}

// refreshStaticTexts re-localizes every fixed label after a language change.
func (app *HourClockApp) refreshStaticTexts() {
	if app.Window == nil {
		return
	}
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.noteLabel.SetText(app.GetMsg(config.TKeyNoteNoBirthday))
	app.birthLabel.SetText(app.GetMsg(config.TKeyLblBirthday))
	if app.mode == config.ModeDetailed {
		app.toggleBtn.SetText(app.GetMsg(config.TKeyBtnCompact))
	} else {
		app.toggleBtn.SetText(app.GetMsg(config.TKeyBtnDetailed))
	}
	app.render(engine.ComputeSnapshot(app.Clock.Now(), app.birthDateValue()))
}

// milestoneSummaryFormatter returns a closure that localizes exported event
// titles.
func (app *HourClockApp) milestoneSummaryFormatter() func(day int) string {
	return func(day int) string {
		if app.Localizer != nil {
			msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyEvtSummary,
				TemplateData: map[string]interface{}{"Day": day},
			})
			if err == nil && msg != "" {
				return msg
			}
		}
		return fmt.Sprintf(config.FallbackEvtSummary, day)
	}
}

// formatPercent renders a fraction as a percentage with one decimal digit,
// rounding half away from zero (fmt's %.1f rounds half to even).
func formatPercent(frac float64) string {
	tenths := math.Floor(frac*1000+0.5) / 10
	return strconv.FormatFloat(tenths, 'f', 1, 64) + config.PercentSuffix
}
