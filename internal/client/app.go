package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/message"

	"github.com/MKhiriev/go-user-client/internal/app"
	"github.com/MKhiriev/go-user-client/internal/logger"
	"github.com/MKhiriev/go-user-client/internal/service"
	"github.com/MKhiriev/go-user-client/models"
)

// App is the command-line client. It is not safe for concurrent use.
type App struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	printer   *message.Printer
	out       io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, buildInfo models.AppBuildInfo, locale string, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services:  services,
		buildInfo: buildInfo,
		printer:   app.NewPrinter(locale),
		out:       out,
		logger:    logger.GetChildLogger("cli"),
	}
}

// Run executes the command named by args[0] with the remaining arguments.
// With no arguments it prints the usage.
func (a *App) Run(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.out)

	return root.ExecuteContext(ctx)
}

func (a *App) list(ctx context.Context, _ []string) error {
	users, err := a.services.UserService.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return a.println(a.printer.Sprintf(app.MsgNoUsers))
	}

	return a.println(renderUsers(users))
}

func (a *App) get(ctx context.Context, args []string) error {
	return a.printUser(a.services.UserService.GetUser(ctx, args[0]))
}

func (a *App) update(ctx context.Context, args []string) error {
	var user models.User
	dec := json.NewDecoder(bytes.NewReader([]byte(args[1])))
	dec.UseNumber()
	if err := dec.Decode(&user); err != nil {
		return fmt.Errorf("%w: update <id> <json>: %w", ErrUsage, err)
	}

	return a.printUser(a.services.UserService.UpdateUser(ctx, args[0], user))
}

func (a *App) connect(ctx context.Context, args []string) error {
	connected, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("%w: connect <id> <true|false>: %w", ErrUsage, err)
	}

	return a.printUser(a.services.UserService.UpdateIsConnected(ctx, args[0], connected))
}

func (a *App) login(ctx context.Context, args []string) error {
	return a.printUser(a.services.UserService.Login(ctx, args[0]))
}

func (a *App) logout(ctx context.Context, args []string) error {
	return a.printUser(a.services.UserService.Logout(ctx, args[0]))
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	userID, ok := a.services.UserService.ActiveUserID(ctx)
	if !ok {
		return a.println(a.printer.Sprintf(app.MsgNoActiveUser))
	}

	return a.println(a.printer.Sprintf(app.MsgActiveUser, userID))
}

func (a *App) clear(ctx context.Context, _ []string) error {
	if err := a.services.UserService.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return a.println(a.printer.Sprintf(app.MsgSessionCleared))
}

func (a *App) email(ctx context.Context, args []string) error {
	return a.printUser(a.services.UserService.UpdateEmail(ctx, args[0], args[1]))
}

func (a *App) walletAdd(ctx context.Context, args []string) error {
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	return a.printUser(a.services.UserService.AddToWallet(ctx, args[0], amount))
}

func (a *App) walletDeduct(ctx context.Context, args []string) error {
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	return a.printUser(a.services.UserService.DeductFromWallet(ctx, args[0], amount))
}

func (a *App) version(_ context.Context, _ []string) error {
	_, err := io.WriteString(a.out, a.buildInfo.String())
	return err
}

func (a *App) printUser(user models.User, err error) error {
	if err != nil {
		return err
	}

	return a.println(renderUser(user))
}

func (a *App) println(s string) error {
	_, err := fmt.Fprintln(a.out, s)
	return err
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount must be a number: %w", ErrUsage, err)
	}

	return amount, nil
}
