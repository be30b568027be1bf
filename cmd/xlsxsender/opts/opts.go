package opts

import (
	"github.com/LuanGibin/XlsxSender/pkg/config"
	"github.com/LuanGibin/XlsxSender/pkg/operation"
	"github.com/LuanGibin/XlsxSender/pkg/scanner"
	"github.com/LuanGibin/XlsxSender/pkg/status"
	"github.com/LuanGibin/XlsxSender/pkg/userlog"
	"github.com/LuanGibin/XlsxSender/pkg/vfs"
)

// RootOpts contains shared dependencies used by all commands
type RootOpts struct {
	Config     *config.Config
	Store      *status.Store
	Scanner    *scanner.Scanner
	Runner     *operation.Runner
	UserLogger *userlog.UserLogger
	Picker     vfs.Picker
}
