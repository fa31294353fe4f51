package tui

import (
	"github.com/javiermolinar/caloriecalc/internal/tui/view"
	"github.com/javiermolinar/caloriecalc/internal/update"
)

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalUpdate:
		return m.renderUpdateModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
	}
}

// renderUpdateModal asks whether to restart into the new binary.
func (m Model) renderUpdateModal() string {
	styles := m.modalStyles()
	body := update.Prompt
	if !m.notice.ModTime.IsZero() {
		body += "\n\nInstalled " + m.notice.ModTime.Format("2006-01-02 15:04")
	}
	return view.RenderModalFrame("Update", body, view.ConfirmFooter(styles), styles)
}
