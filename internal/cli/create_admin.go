package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/langschool/contentapi/internal/auth"
	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/database"
	"github.com/langschool/contentapi/internal/database/users"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/email"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/services"
)

// PasswordEnv lets scripts pass the admin password without exposing it in
// the process list.
const PasswordEnv = "ADMIN_PASSWORD"

// CreateAdminCommand creates an administrator account directly in the database.
type CreateAdminCommand struct {
	Email     string
	UserName  string
	Password  string
	FirstName string
	LastName  string
	Force     bool

	cfg *config.Config
	out io.Writer
}

func NewCreateAdminCommand(cfg *config.Config) *CreateAdminCommand {
	return &CreateAdminCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *CreateAdminCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)

	fs.StringVar(&cmd.Email, "email", "", "Email address of the administrator (required)")
	fs.StringVar(&cmd.UserName, "username", "", "User name of the administrator (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password; falls back to $"+PasswordEnv)
	fs.StringVar(&cmd.FirstName, "first-name", "", "First name")
	fs.StringVar(&cmd.LastName, "last-name", "", "Last name")
	fs.BoolVar(&cmd.Force, "force", false, "Create the account even if other users already exist")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-admin -email <email> -username <name> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create the first administrator account. The database is taken from\n")
		fmt.Fprintf(os.Stderr, "DB_DRIVER / DB_DSN / DATABASE_PATH like the server uses.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s=secret123 %s create-admin -email admin@example.com -username admin\n", PasswordEnv, os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Email == "" {
		return fmt.Errorf("required flag -email not provided")
	}
	if cmd.UserName == "" {
		return fmt.Errorf("required flag -username not provided")
	}
	if cmd.Password == "" {
		cmd.Password = os.Getenv(PasswordEnv)
	}
	if cmd.Password == "" {
		return fmt.Errorf("password not provided: use -password or set %s", PasswordEnv)
	}
	return nil
}

func (cmd *CreateAdminCommand) Run() error {
	db, err := database.NewDatabase(cmd.cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	limiter := auth.NewRateLimiter(auth.RateLimitConfigFromAuth(cmd.cfg.Auth))
	defer limiter.Stop()

	authService := auth.NewService(
		users.NewRepository(db.DB),
		auth.NewJWTManager(cmd.cfg.Auth.JWTSecret, cmd.cfg.Auth.JWTIssuer, cmd.cfg.Auth.TokenExpiry),
		limiter,
		email.LogSender{},
		services.NewValidator(),
		cmd.cfg.Auth,
	)

	ctx := context.Background()
	hasUsers, err := authService.HasUsers(ctx)
	if err != nil {
		return err
	}
	if hasUsers && !cmd.Force {
		return fmt.Errorf("users already exist; pass -force to add another administrator")
	}

	user, err := authService.CreateUser(ctx, dto.RegisterRequest{
		Email:     cmd.Email,
		UserName:  cmd.UserName,
		Password:  cmd.Password,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
	}, entities.RoleAdmin)
	if err != nil {
		return fmt.Errorf("create administrator: %w", err)
	}

	fmt.Fprintf(cmd.out, "Created administrator %q (id %d)\n", user.UserName, user.ID)
	return nil
}
