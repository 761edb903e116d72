package ui

import "github.com/sqweek/dialog"

// Alert shows a blocking native error dialog. It does not need the ImGui
// window, so it can report a failed context creation.
func Alert(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}
