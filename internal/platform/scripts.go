package platform

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

// appleScript builds the osascript program that posts a notification. The
// application name goes in the subtitle since osascript always reports
// itself as the sender.
func appleScript(title, body string, opts Options) string {
	return fmt.Sprintf("display notification %s with title %s subtitle %s",
		appleQuote(body), appleQuote(title), appleQuote(opts.appName()))
}

func appleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func psQuote(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	return "'" + escaped + "'"
}

// toastScript builds the PowerShell program that shows a toast, with the
// icon when one is given.
func toastScript(title, body string, opts Options) string {
	icon := strings.TrimSpace(opts.IconPath)
	tmpl := "ToastText02"
	if icon != "" {
		tmpl = "ToastImageAndText02"
	}
	var sb strings.Builder
	sb.WriteString(`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; `)
	fmt.Fprintf(&sb, `$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); `, tmpl)
	sb.WriteString(`$texts = $template.GetElementsByTagName("text"); `)
	fmt.Fprintf(&sb, `$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null; `, psQuote(title))
	fmt.Fprintf(&sb, `$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null; `, psQuote(body))
	if icon != "" {
		sb.WriteString(`$image = $template.GetElementsByTagName("image").Item(0); `)
		fmt.Fprintf(&sb, `$image.SetAttribute("src", %s); `, psQuote(icon))
	}
	sb.WriteString(`$toast = [Windows.UI.Notifications.ToastNotification]::new($template); `)
	fmt.Fprintf(&sb, `$toast.ExpirationTime = [DateTimeOffset]::Now.AddSeconds(%d); `, int(opts.timeout().Seconds()))
	fmt.Fprintf(&sb, `$notifier = [Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s); `, psQuote(opts.appName()))
	sb.WriteString(`$notifier.Show($toast);`)
	return sb.String()
}

// dbusHints returns the Freedesktop notification hints for opts.
func dbusHints(opts Options) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"category": dbus.MakeVariant("transfer.complete"),
	}
	if icon := strings.TrimSpace(opts.IconPath); icon != "" {
		hints["image-path"] = dbus.MakeVariant(icon)
	}
	return hints
}
