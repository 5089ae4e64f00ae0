package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/mantis/internal/client/stores"
)

func section(w io.Writer, title string, lines ...string) error {
	if _, err := fmt.Fprintf(w, "-- %s --\n", title); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

type loginPage struct {
	reg *stores.Registry
}

func (loginPage) Title() string { return "Login" }

func (v loginPage) Render(w io.Writer) error {
	lines := []string{"Type 'login' to enter your credentials."}
	if ret := v.reg.Auth().ReturnURL(); ret != "" {
		lines = append(lines, fmt.Sprintf("You will be taken back to %s afterwards.", ret))
	}
	lines = append(lines, "Don't have an account? Type 'go /auth/register'.")
	return section(w, v.Title(), lines...)
}

type registerPage struct{}

func (registerPage) Title() string { return "Register" }

func (v registerPage) Render(w io.Writer) error {
	return section(w, v.Title(),
		"Type 'register' to create an account.",
		"Already have an account? Type 'go /auth/login'.")
}

type error404Page struct{}

func (error404Page) Title() string { return "Page Not Found" }

func (v error404Page) Render(w io.Writer) error {
	return section(w, v.Title(),
		"The page you are looking for was moved, removed, renamed, or might never exist!",
		"Type 'go /' to return home.")
}

type dashboardPage struct {
	reg *stores.Registry
}

func (dashboardPage) Title() string { return "Default" }

func (v dashboardPage) Render(w io.Writer) error {
	greeting := "Hello!"
	if u := v.reg.Auth().User(); u != nil {
		greeting = fmt.Sprintf("Hello, %s!", u.DisplayName())
	}
	return section(w, v.Title(),
		greeting,
		"Total Page Views   4,42,236",
		"Total Users        78,250",
		"Total Order        18,800",
		"Total Sales        $35,078")
}

type typographyPage struct{}

func (typographyPage) Title() string { return "Typography" }

func (v typographyPage) Render(w io.Writer) error {
	return section(w, v.Title(),
		"H1  Inter SemiBold 38/46",
		"H2  Inter SemiBold 30/38",
		"H3  Inter Regular 24/32",
		"H4  Inter SemiBold 20/28",
		"H5  Inter Medium 16/24",
		"H6  Inter Regular 14/20",
		"Body 1  Inter Regular 14/22",
		"Body 2  Inter Regular 12/20")
}

type colorsPage struct {
	reg *stores.Registry
}

func (colorsPage) Title() string { return "Color" }

var (
	lightPalette = [][2]string{
		{"primary", "#1677ff"}, {"secondary", "#8c8c8c"}, {"success", "#52c41a"},
		{"warning", "#faad14"}, {"error", "#ff4d4f"}, {"background", "#fafafb"},
	}
	darkPalette = [][2]string{
		{"primary", "#1668dc"}, {"secondary", "#8c8c8c"}, {"success", "#49aa19"},
		{"warning", "#d89614"}, {"error", "#dc4446"}, {"background", "#121212"},
	}
)

func (v colorsPage) Render(w io.Writer) error {
	palette, name := lightPalette, "light"
	if v.reg.Preferences().IsDarkTheme() {
		palette, name = darkPalette, "dark"
	}
	lines := []string{fmt.Sprintf("Palette: %s", name)}
	for _, c := range palette {
		lines = append(lines, fmt.Sprintf("%-11s%s", c[0], c[1]))
	}
	return section(w, v.Title(), lines...)
}

type shadowPage struct{}

func (shadowPage) Title() string { return "Shadow" }

func (v shadowPage) Render(w io.Writer) error {
	lines := make([]string, 0, 4)
	for i := 1; i <= 4; i++ {
		lines = append(lines, fmt.Sprintf("elevation %d  %s", i, strings.Repeat("░", i*4)))
	}
	return section(w, v.Title(), lines...)
}

type antIconsPage struct{}

func (antIconsPage) Title() string { return "Ant Icons" }

func (v antIconsPage) Render(w io.Writer) error {
	return section(w, v.Title(),
		"DashboardOutlined  LoginOutlined  ProfileOutlined",
		"FontSizeOutlined   BgColorsOutlined  BarcodeOutlined",
		"ChromeOutlined     QuestionOutlined  CrownOutlined")
}

type samplePage struct{}

func (samplePage) Title() string { return "Sample Page" }

func (v samplePage) Render(w io.Writer) error {
	return section(w, v.Title(), "Lorem ipsum dolor sit amet, consectetur adipiscing elit.")
}
