package lantern

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"

	"lantern/internal/envx"
)

// ServerReadyInfo describes the one-time startup banner emitted when a host
// process finishes booting.
type ServerReadyInfo struct {
	App        string
	Version    string
	Mode       string // "run" or "dev"
	Status     string // "ready", "listening", "running"
	ConfigPath string

	Scheme   string
	Host     string
	Port     int
	BasePath string

	ShowWS   bool
	WSScheme string
	WSHost   string
	WSPort   int
	WSPath   string

	ReadyMS    int
	Threads    int
	MaxThreads int
	ShowHints  bool

	// Suppress skips the banner entirely, leaving the gate open. Set it from
	// configuration (suppress_banner); LANTERN_NO_BANNER suppresses too.
	Suppress bool
}

const bannerLabelWidth = 8

// EmitServerReady prints the startup banner to w (stderr when nil), holding
// concurrent console writers back until the banner is complete. When the
// banner is suppressed via LANTERN_NO_BANNER, nothing is printed and the
// gate stays open.
func EmitServerReady(coord *Coordinator, w io.Writer, info ServerReadyInfo) {
	if coord == nil {
		coord = DefaultCoordinator()
	}
	if w == nil {
		w = os.Stderr
	}
	if info.Suppress || envx.Bool(EnvNoBanner, false) {
		return
	}

	coord.ResetBanner()
	defer coord.MarkBannerDone()

	color := ColorsEnabled(w)
	var b strings.Builder
	writeBannerHeader(&b, info, color)
	b.WriteByte('\n')

	bannerRow(&b, bullet(color), "HTTP:", httpURL(info), false, color)
	if info.ShowWS {
		bannerRow(&b, bullet(color), "WS:", wsURL(info), false, color)
	}
	if info.ConfigPath != "" {
		bannerRow(&b, infoMark(color), "Config:", info.ConfigPath, true, color)
	}
	if info.Threads > 0 {
		v := strconv.Itoa(info.Threads)
		if info.MaxThreads > 0 {
			v += "/" + strconv.Itoa(info.MaxThreads)
		}
		bannerRow(&b, infoMark(color), "Threads:", v, true, color)
	}
	bannerRow(&b, infoMark(color), "Mode:", prettyMode(info.Mode), true, color)
	bannerRow(&b, infoMark(color), "Status:", prettyStatus(info.Status), true, color)
	if info.ShowHints {
		bannerRow(&b, infoMark(color), "Hint:", "Ctrl+C to stop the server", true, color)
	}
	b.WriteByte('\n')

	coord.WithOutputLock(func() {
		io.WriteString(w, b.String()) //nolint:errcheck // best-effort banner
	})
}

func writeBannerHeader(b *strings.Builder, info ServerReadyInfo, color bool) {
	ts := time.Now().Format("3:04:05 PM")
	if color {
		b.WriteString(text.Colors{text.FgHiBlack}.Sprint(ts))
	} else {
		b.WriteString(ts)
	}
	b.WriteString("  ")

	app := info.App
	if app == "" {
		app = "lantern"
	}
	if color {
		b.WriteString(text.Colors{text.FgGreen}.Sprint("●"))
		b.WriteByte(' ')
		b.WriteString(text.Colors{text.Bold, text.FgGreen}.Sprint(strings.ToUpper(app)))
	} else {
		b.WriteString("[" + app + "]")
	}
	b.WriteString("  ")
	b.WriteString(statusPill(strings.ToUpper(prettyStatus(info.Status)), color))

	if info.Version != "" {
		b.WriteString("  ")
		if color {
			b.WriteString(text.Colors{text.Bold, text.FgHiWhite}.Sprint(info.Version))
		} else {
			b.WriteString(info.Version)
		}
	}
	if info.ReadyMS >= 0 {
		ms := fmt.Sprintf(" (%d ms)", info.ReadyMS)
		if color {
			b.WriteString(text.Colors{text.Faint}.Sprint(ms))
		} else {
			b.WriteString(ms)
		}
	}
	if info.Mode != "" {
		b.WriteString("  ")
		b.WriteString(modeTag(info.Mode, color))
	}
	b.WriteByte('\n')
}

func bannerRow(b *strings.Builder, icon, label, value string, dimValue, color bool) {
	if len(label) < bannerLabelWidth {
		label += strings.Repeat(" ", bannerLabelWidth-len(label))
	}
	b.WriteString("  ")
	b.WriteString(icon)
	b.WriteByte(' ')
	if color {
		b.WriteString(text.Colors{text.Bold, text.FgHiWhite}.Sprint(label))
	} else {
		b.WriteString(label)
	}
	switch {
	case color && dimValue:
		b.WriteString(text.Colors{text.Faint}.Sprint(value))
	case color:
		b.WriteString(text.Colors{text.FgCyan}.Sprint(value))
	default:
		b.WriteString(value)
	}
	b.WriteByte('\n')
}

func statusPill(status string, color bool) string {
	if !color {
		return status
	}
	colors := text.Colors{text.Bold, text.FgBlack, text.BgGreen}
	switch status {
	case "RUNNING", "LISTENING":
		colors = text.Colors{text.Bold, text.FgBlack, text.BgCyan}
	case "WARN", "WARNING":
		colors = text.Colors{text.Bold, text.FgBlack, text.BgYellow}
	case "ERROR", "FAILED":
		colors = text.Colors{text.Bold, text.FgWhite, text.BgRed}
	}
	return colors.Sprint(" " + status + " ")
}

func modeTag(mode string, color bool) string {
	if !color {
		return "[" + mode + "]"
	}
	if mode == "dev" {
		return text.Colors{text.Bold, text.FgBlack, text.BgGreen}.Sprint(" dev ")
	}
	return text.Colors{text.Bold, text.FgHiWhite, text.BgHiBlack}.Sprint(" " + mode + " ")
}

func bullet(color bool) string {
	if color {
		return text.Colors{text.FgCyan}.Sprint("›")
	}
	return ">"
}

func infoMark(color bool) string {
	if color {
		return text.Colors{text.FgHiBlack}.Sprint("i")
	}
	return "i"
}

func prettyMode(mode string) string {
	if mode == "dev" {
		return "dev (watch/reload)"
	}
	if mode == "" {
		return "run"
	}
	return mode
}

func prettyStatus(status string) string {
	if status == "" {
		return "ready"
	}
	return status
}

func httpURL(i ServerReadyInfo) string {
	scheme := i.Scheme
	if scheme == "" {
		scheme = "http"
	}
	host := i.Host
	if host == "" {
		host = "localhost"
	}
	base := i.BasePath
	if base == "" {
		base = "/"
	} else if base[0] != '/' {
		base = "/" + base
	}
	return fmt.Sprintf("%s://%s:%d%s", scheme, host, i.Port, base)
}

func wsURL(i ServerReadyInfo) string {
	scheme := i.WSScheme
	if scheme == "" {
		scheme = "ws"
	}
	host := i.WSHost
	if host == "" {
		host = "localhost"
	}
	path := i.WSPath
	if path != "" && path[0] != '/' {
		path = "/" + path
	}
	return fmt.Sprintf("%s://%s:%d%s", scheme, host, i.WSPort, path)
}
