package app

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
	createBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/create_booking"
	listShopsHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/list_shops"
	loginHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/login"
	registerHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/register"
	socialLoginHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/social_login"
	sessionService "github.com/m04kA/SMC-BeautyBooking/internal/service/session"
)

const msgLoginRequired = "Войдите в аккаунт: выполните login"

// RootCommand дерево команд клиента
func (a *App) RootCommand() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "beauty-booking",
		Short:         "Бронирование услуг салонов красоты и фитнеса",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				a.Renderer.DisableColor()
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stdout)
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "отключить цветной вывод")

	root.AddCommand(
		a.shopsCommand(),
		a.shopCommand(),
		a.bookCommand(),
		a.bookingsCommand(),
		a.cancelCommand(),
		a.loginCommand(),
		a.socialLoginCommand(),
		a.registerCommand(),
		a.logoutCommand(),
		a.profileCommand(),
		a.themeCommand(),
	)
	return root
}

// Execute выполняет команду и печатает ошибку для пользователя
// Возвращает код завершения процесса
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.RootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Error("Command failed: args=%v, error=%v", args, err)

		var userErr *handlers.UserError
		if !errors.As(err, &userErr) {
			// ошибки разбора аргументов cobra
			a.Renderer.Error("%s", err.Error())
			return 1
		}

		msg, details := handlers.MessageOf(err)
		a.Renderer.Error("%s", msg)
		for _, detail := range details {
			a.Renderer.Muted("  - %s", detail)
		}
		return 1
	}
	return 0
}

// authed выполняет команду только для вошедшего пользователя
func (a *App) authed(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := a.Session.RequireAuth(func() error {
			return run(cmd, args)
		})
		if errors.Is(err, sessionService.ErrLoginRequired) {
			return handlers.Fail(msgLoginRequired, err)
		}
		return err
	}
}

func (a *App) shopsCommand() *cobra.Command {
	var (
		req      listShopsHandler.Request
		lat, lng float64
	)

	cmd := &cobra.Command{
		Use:   "shops",
		Short: "Список заведений",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lat") {
				req.Latitude = &lat
			}
			if cmd.Flags().Changed("lng") {
				req.Longitude = &lng
			}
			return a.Handlers.ListShops.Handle(cmd.Context(), req)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Category, "category", "", "категория: hair_salon, beauty_shop, gym, pilates")
	flags.StringVar(&req.Search, "search", "", "поиск по названию")
	flags.Float64Var(&lat, "lat", 0, "широта")
	flags.Float64Var(&lng, "lng", 0, "долгота")
	flags.IntVar(&req.Distance, "distance", 0, "радиус поиска рядом, км (по умолчанию 5)")
	flags.StringSliceVar(&req.Districts, "district", nil, "районы Сеула, например 강남구")
	return cmd
}

func (a *App) shopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shop <id>",
		Short: "Карточка заведения с услугами и специалистами",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Handlers.GetShop.Handle(cmd.Context(), args[0])
		},
	}
}

func (a *App) bookCommand() *cobra.Command {
	var req createBookingHandler.Request

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Забронировать услугу",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, args []string) error {
			return a.Handlers.Book.Handle(cmd.Context(), req)
		}),
	}

	flags := cmd.Flags()
	flags.Int64Var(&req.ShopID, "shop", 0, "ID заведения")
	flags.Int64Var(&req.ServiceID, "service", 0, "ID услуги")
	flags.Int64Var(&req.StylistID, "stylist", 0, "ID специалиста")
	flags.StringVar(&req.Date, "date", "", "дата ГГГГ-ММ-ДД")
	flags.StringVar(&req.Time, "time", "", "время ЧЧ:ММ")
	flags.BoolVar(&req.Yes, "yes", false, "не спрашивать подтверждение")
	_ = cmd.MarkFlagRequired("shop")
	return cmd
}

func (a *App) bookingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "Мои бронирования",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, args []string) error {
			return a.Handlers.Bookings.Handle(cmd.Context())
		}),
	}
}

func (a *App) cancelCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Отменить бронирование",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(cmd *cobra.Command, args []string) error {
			return a.Handlers.Cancel.Handle(cmd.Context(), args[0], yes)
		}),
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "не спрашивать подтверждение")
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var req loginHandler.Request

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Войти по email и паролю",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Handlers.Login.Handle(cmd.Context(), req)
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "email")
	cmd.Flags().StringVar(&req.Password, "password", "", "пароль")
	return cmd
}

func (a *App) socialLoginCommand() *cobra.Command {
	var req socialLoginHandler.Request

	cmd := &cobra.Command{
		Use:   "social-login <google|kakao>",
		Short: "Войти через google или kakao",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Provider = args[0]
			return a.Handlers.SocialLogin.Handle(cmd.Context(), req)
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "email профиля")
	cmd.Flags().StringVar(&req.Name, "name", "", "имя профиля")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "телефон профиля")
	return cmd
}

func (a *App) registerCommand() *cobra.Command {
	var req registerHandler.Request

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Зарегистрироваться",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Handlers.Register.Handle(cmd.Context(), req)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Email, "email", "", "email")
	flags.StringVar(&req.Password, "password", "", "пароль")
	flags.StringVar(&req.PasswordConfirm, "password-confirm", "", "повтор пароля")
	flags.StringVar(&req.Name, "name", "", "имя")
	flags.StringVar(&req.Phone, "phone", "", "телефон 010-1234-5678")
	flags.StringVar(&req.Role, "role", "", "роль: customer или shop_owner")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Выйти из аккаунта",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Handlers.Logout.Handle()
		},
	}
}

func (a *App) profileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Профиль пользователя",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, args []string) error {
			return a.Handlers.Profile.Handle()
		}),
	}
}

func (a *App) themeCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [on|off|toggle]",
		Short:     "Темная тема",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := ""
			if len(args) == 1 {
				mode = args[0]
			}
			return a.Handlers.Theme.Handle(mode)
		},
	}
}
