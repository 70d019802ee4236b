// Package i18n provides the installer message sets. Language selection
// changes displayed text only; the install sequence is identical.
package i18n

import "go.frostpack.dev/frost/internal/core/domain"

// Key identifies one translatable installer message.
type Key string

// Installer message keys.
const (
	KeyPreparing       Key = "preparing"
	KeyCopyingFiles    Key = "copying_files"
	KeyCreatingMenu    Key = "creating_menu_shortcut"
	KeyCreatingDesktop Key = "creating_desktop_shortcut"
	KeyAutostart       Key = "configuring_autostart"
	KeyLaunching       Key = "launching"
	KeyInstallDone     Key = "install_done"
	KeyRemovingFiles   Key = "removing_files"
	KeyRemovingEntries Key = "removing_entries"
	KeyUninstallDone   Key = "uninstall_done"
	KeyTaskDesktop     Key = "task_desktop"
	KeyTaskAutostart   Key = "task_autostart"
)

var english = map[Key]string{
	KeyPreparing:       "Preparing installation directory...",
	KeyCopyingFiles:    "Copying application files...",
	KeyCreatingMenu:    "Creating Start Menu shortcut...",
	KeyCreatingDesktop: "Creating desktop shortcut...",
	KeyAutostart:       "Configuring autostart...",
	KeyLaunching:       "Launching application...",
	KeyInstallDone:     "Installation complete",
	KeyRemovingFiles:   "Removing application files...",
	KeyRemovingEntries: "Removing shortcuts and autostart entries...",
	KeyUninstallDone:   "Uninstall complete",
	KeyTaskDesktop:     "Create a desktop icon",
	KeyTaskAutostart:   "Start automatically at login",
}

var russian = map[Key]string{
	KeyPreparing:       "Подготовка папки установки...",
	KeyCopyingFiles:    "Копирование файлов приложения...",
	KeyCreatingMenu:    "Создание ярлыка в меню Пуск...",
	KeyCreatingDesktop: "Создание ярлыка на рабочем столе...",
	KeyAutostart:       "Настройка автозапуска...",
	KeyLaunching:       "Запуск приложения...",
	KeyInstallDone:     "Установка завершена",
	KeyRemovingFiles:   "Удаление файлов приложения...",
	KeyRemovingEntries: "Удаление ярлыков и автозапуска...",
	KeyUninstallDone:   "Удаление завершено",
	KeyTaskDesktop:     "Создать значок на рабочем столе",
	KeyTaskAutostart:   "Запускать автоматически при входе в систему",
}

// Catalog resolves message keys for one language.
type Catalog struct {
	lang     domain.Language
	messages map[Key]string
}

// For returns the catalog for the given language. Unknown languages fall
// back to English so a bad selection still installs correctly.
func For(lang domain.Language) *Catalog {
	switch lang {
	case domain.LangRussian:
		return &Catalog{lang: lang, messages: russian}
	default:
		return &Catalog{lang: domain.LangEnglish, messages: english}
	}
}

// Language returns the catalog's language.
func (c *Catalog) Language() domain.Language {
	return c.lang
}

// Get returns the message for key, falling back to English and finally to
// the key itself so a missing translation never breaks an install.
func (c *Catalog) Get(key Key) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	if msg, ok := english[key]; ok {
		return msg
	}
	return string(key)
}
