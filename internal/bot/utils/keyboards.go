package utils

import (
	"jobscout-bot/internal/profile"

	tele "gopkg.in/telebot.v3"
)

func WorkModeKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}

	btnRemote := menu.Text("Remote")
	btnHybrid := menu.Text("Hybrid")
	btnOnsite := menu.Text("Onsite")
	btnAll := menu.Text("All")

	menu.Reply(
		menu.Row(btnRemote, btnHybrid),
		menu.Row(btnOnsite, btnAll),
	)

	return menu
}

func CompBandKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}

	var options []string
	for _, b := range profile.CompBandOptions() {
		options = append(options, string(b))
	}

	var rows []tele.Row
	for i := 0; i+1 < len(options); i += 2 {
		rows = append(rows, menu.Row(menu.Text(options[i]), menu.Text(options[i+1])))
	}
	if len(options)%2 == 1 {
		rows = append(rows, menu.Row(menu.Text(options[len(options)-1])))
	}

	menu.Reply(rows...)

	return menu
}

func RemoveKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}
