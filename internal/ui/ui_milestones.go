package ui

import (
	"log/slog"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/hinahinako39/hour-percent-clock/internal/config"
	"github.com/hinahinako39/hour-percent-clock/internal/engine"
)

// ShowMilestonesWindow displays a window with the upcoming 100-day milestones.
// It implements a singleton pattern: if the window is already open, it
// requests focus. It uses native Fyne table headers for sorting interaction.
func (app *HourClockApp) ShowMilestonesWindow() {
	if app.milestonesWindow != nil {
		app.milestonesWindow.RequestFocus()
		return
	}

	title := app.GetMsg(config.TKeyWinMilestones)
	app.milestonesWindow = app.App.NewWindow(title)
	app.milestonesWindow.Resize(fyne.NewSize(config.MilestonesWinWidth, config.MilestonesWinHeight))

	var entries []engine.MilestoneEntry
	if birth, err := engine.ParseBirthDate(app.birthDateValue()); err == nil {
		entries = engine.MilestoneSchedule(app.Clock.Now(), birth, config.MilestoneWindowCount)
	}

	slog.Info(config.MsgOpenMilestones,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(entries))

	// Internal Sorting State
	currentSortCol := config.ColIDDay
	sortAsc := true

	var refreshTable func()

	// performSort applies the sorting logic based on the selected column.
	// Day, Date and DaysUntil all increase together, so every column sorts
	// by the milestone day; the column choice only decides which header
	// carries the indicator.
	performSort := func() {
		sort.Slice(entries, func(i, j int) bool {
			less := entries[i].Day < entries[j].Day
			if !sortAsc {
				return !less
			}
			return less
		})

		slog.Debug(config.MsgMilestonesSort,
			config.LogKeyComponent, config.CompUI,
			config.LogKeySortCol, currentSortCol,
			config.LogKeySortAsc, sortAsc)
	}

	performSort()

	// --- UI Table Component ---

	table := widget.NewTable(
		func() (int, int) {
			return len(entries), 3
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(entries) {
				return
			}
			entry := entries[id.Row]

			switch id.Col {
			case config.ColIDDay:
				label.SetText(strconv.Itoa(entry.Day))
			case config.ColIDDate:
				label.SetText(entry.Date.Format(config.DateFormatISO))
			case config.ColIDIn:
				label.SetText(strconv.Itoa(entry.DaysUntil))
			}
		},
	)

	// --- Header Configuration (Fyne Native) ---

	table.ShowHeaderRow = true

	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("Header", func() {})
	}

	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)

		var titleKey string
		switch id.Col {
		case config.ColIDDay:
			titleKey = config.TKeyColDay
		case config.ColIDDate:
			titleKey = config.TKeyColDate
		case config.ColIDIn:
			titleKey = config.TKeyColIn
		}

		text := app.GetMsg(titleKey)
		if id.Col == currentSortCol {
			if sortAsc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)

		btn.OnTapped = func() {
			if currentSortCol == id.Col {
				sortAsc = !sortAsc
			} else {
				currentSortCol = id.Col
				sortAsc = true
			}
			refreshTable()
		}
	}

	table.SetColumnWidth(config.ColIDDay, config.ColWidthDay)
	table.SetColumnWidth(config.ColIDDate, config.ColWidthDate)
	table.SetColumnWidth(config.ColIDIn, config.ColWidthIn)

	refreshTable = func() {
		performSort()
		table.Refresh()
	}

	// An empty table with a note reads better than a bare grid when no
	// birthday is set.
	var content fyne.CanvasObject = table
	if len(entries) == 0 {
		note := widget.NewLabel(app.GetMsg(config.TKeyNoteNoBirthday))
		note.Alignment = fyne.TextAlignCenter
		note.TextStyle = fyne.TextStyle{Italic: true}
		content = container.NewCenter(note)
	}

	app.milestonesWindow.SetContent(content)
	app.milestonesWindow.SetOnClosed(func() {
		app.milestonesWindow = nil
	})

	app.milestonesWindow.Show()
}
