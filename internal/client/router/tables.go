package router

// Component identifiers resolved by a Loader.
const (
	AuthLayout     = "layouts/authentication/AuthLayout"
	HomeLayout     = "layouts/HomeLayout"
	MainLayout     = "layouts/full/FullLayout"
	LoginPage      = "views/authentication/auth/LoginPage"
	RegisterPage   = "views/authentication/auth/RegisterPage"
	Error404Page   = "views/pages/maintenance/error/Error404Page"
	DashboardPage  = "views/dashboard/DefaultDashboard"
	TypographyPage = "views/utilities/typography/TypographyPage"
	ColorsPage     = "views/utilities/colors/ColorPage"
	ShadowPage     = "views/utilities/shadows/ShadowPage"
	AntIconsPage   = "views/utilities/icons/AntDesignIcons"
	SamplePage     = "views/pages/SamplePage"
)

// Loader turns a component identifier into a lazy view factory.
type Loader func(component string) ViewFactory

// AuthRoutes is the public authentication branch.
func AuthRoutes(load Loader) Route {
	return Route{
		Path:      "/auth",
		Component: load(AuthLayout),
		Meta:      Meta{Access: AccessPublic},
		Children: []Route{
			{Name: "Login", Path: "login", Component: load(LoginPage)},
			{Name: "Register", Path: "register", Component: load(RegisterPage)},
			{Name: "Error 404", Path: "pages/error", Component: load(Error404Page)},
		},
	}
}

// HomeRoutes is the public landing page.
func HomeRoutes(load Loader) Route {
	return Route{
		Path:      "/",
		Name:      "Home",
		Component: load(HomeLayout),
		Meta:      Meta{Access: AccessPublic},
	}
}

// DashboardRoutes is the protected branch. Its pages sit at absolute
// paths; the branch path only names the layout.
func DashboardRoutes(load Loader) Route {
	return Route{
		Path:      "/main",
		Component: load(MainLayout),
		Meta:      Meta{Access: AccessProtected},
		Children: []Route{
			{Name: "Default", Path: "/dashboard", Component: load(DashboardPage)},
			{Name: "Typography", Path: "/typography", Component: load(TypographyPage)},
			{Name: "Colors", Path: "/colors", Component: load(ColorsPage)},
			{Name: "Shadow", Path: "/shadow", Component: load(ShadowPage)},
			{Name: "Ant Icons", Path: "/icon/ant", Component: load(AntIconsPage)},
			{Name: "Sample Page", Path: "/sample-page", Component: load(SamplePage)},
		},
	}
}

// Tables returns every branch the dashboard registers.
func Tables(load Loader) []Route {
	return []Route{AuthRoutes(load), HomeRoutes(load), DashboardRoutes(load)}
}
