package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Guismus/DanjonBot/internal/session"
	"github.com/Guismus/DanjonBot/internal/telegram"
)

var botToken string

// botCmd represents the bot command
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Configure and run the chat bot",
}

// telegramBotCmd represents the telegram subcommand of bot
var telegramBotCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Register the Telegram bot token",
	Run: func(cmd *cobra.Command, args []string) {
		if botToken == "" {
			fmt.Println("---")
			fmt.Println("Create your Telegram Bot & Get Token")
			fmt.Println("Open Telegram and search for the official @BotFather.")
			fmt.Println("Send the /newbot command and follow the prompts to name your bot and choose a unique username.")
			fmt.Println("BotFather will provide you with an HTTP API token. Store this token securely, danjon needs it to reach the chat.")
			fmt.Println("In a group, make sure the bot's privacy settings let it read messages starting with ? as well as commands.")
			fmt.Println("---")
			fmt.Print("token: ")

			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				botToken = strings.TrimSpace(scanner.Text())
			}
		}

		if botToken != "" {
			viper.Set("telegram_token", botToken)
			if err := writeConfig(); err == nil {
				fmt.Println("Telegram bot token saved successfully.")
			} else {
				fmt.Printf("Error saving configuration: %v\n", err)
			}
		}
	},
}

var runBotCmd = &cobra.Command{
	Use:   "run",
	Short: "Serve the configured Telegram chat until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := viper.GetString("telegram_token")
		if token == "" {
			return errors.New("no telegram token: run 'danjon bot telegram' or set TELEGRAM_TOKEN")
		}

		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		bot := telegram.NewBot(
			telegram.NewClient(token),
			viper.GetInt64("telegram_chat_id"),
			viper.GetInt("telegram_last_update_id"),
			&botAdapter{session: a.session},
			a.logger,
		)
		bot.Checkpoint = func(id int) {
			viper.Set("telegram_last_update_id", id)
			if err := viper.WriteConfig(); err != nil {
				a.logger.Debug("update id not persisted", zap.Error(err))
			}
		}

		if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		a.logger.Info("telegram bot stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
	botCmd.AddCommand(telegramBotCmd)
	botCmd.AddCommand(runBotCmd)

	telegramBotCmd.Flags().StringVarP(&botToken, "token", "t", "", "Telegram bot API token")
	runBotCmd.Flags().Int64("chat", 0, "chat id to serve (0 serves every chat)")
	cobra.CheckErr(viper.BindPFlag("telegram_chat_id", runBotCmd.Flags().Lookup("chat")))
}

// writeConfig saves viper's settings, creating $HOME/.danjon.yaml when no
// config file exists yet.
func writeConfig() error {
	if err := viper.WriteConfig(); err == nil {
		return nil
	}
	if err := viper.SafeWriteConfig(); err == nil {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(home, ".danjon.yaml"))
}

// botAdapter bridges session.Session to the telegram.Executor interface.
type botAdapter struct {
	session *session.Session
}

func (a *botAdapter) Execute(input string) (*telegram.CommandResult, error) {
	res, err := a.session.Execute(input)
	if errors.Is(err, session.ErrUnknownCommand) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &telegram.CommandResult{Messages: res.Messages}, nil
}
