package domain

// Client-visible dashboard paths. The API reports these so the web client
// lands each session on the right screen after authentication.
const (
	PathLogin           = "/login"
	PathDashboard       = "/dashboard"
	PathExpertDashboard = "/expert-dashboard"
	PathAdminDashboard  = "/admin-dashboard"
)

// DashboardPath maps a role to its dashboard. Unknown roles get the plain
// user dashboard.
func DashboardPath(role Role) string {
	switch role {
	case RoleAdmin:
		return PathAdminDashboard
	case RoleExpert:
		return PathExpertDashboard
	default:
		return PathDashboard
	}
}

// LoginRedirect decides where a session lands after authentication. An empty
// role means unauthenticated and always resolves to the login page. A
// remembered intendedPath wins over the role default unless it is the login
// page itself.
func LoginRedirect(role Role, intendedPath string) string {
	if role == "" {
		return PathLogin
	}
	if intendedPath != "" && intendedPath != PathLogin {
		return intendedPath
	}
	return DashboardPath(role)
}

// DashboardRole returns the role required to reach the given dashboard path,
// or false when the path is not role-gated.
func DashboardRole(path string) (Role, bool) {
	switch path {
	case PathAdminDashboard:
		return RoleAdmin, true
	case PathExpertDashboard:
		return RoleExpert, true
	case PathDashboard:
		return RoleUser, true
	}
	return "", false
}
