package logout

type AuthService interface {
	Logout() error
}

type Renderer interface {
	Success(format string, v ...interface{})
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
