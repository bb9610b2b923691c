package list_hospitals

type Directory interface {
	Hospitals(state, city string) []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
