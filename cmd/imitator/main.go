// Imitator is a terminal front-end for the style-imitation prompt builder.
// It loads a YAML configuration and a transcript of example conversations,
// assembles the imitation prompt, and either prints it (-prompt) or submits
// it to the configured LLM provider and prints the generated reply. With a
// terminal on stdin it runs a chat loop, extending the target conversation
// with each exchange.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/pcurrier/imitator/pkg/convos/conversation"
	"github.com/pcurrier/imitator/pkg/engine"
	"github.com/pcurrier/imitator/pkg/imitator"
)

// Speaker ids used when the chat loop extends the target conversation.
const (
	userSpeaker     = 0
	imitatorSpeaker = 1
)

func main() {
	configPath := flag.String("config", "imitator.yaml", "path to configuration file")
	transcriptPath := flag.String("transcript", "transcript.yaml", "path to transcript file")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	name := flag.String("name", "", "assistant name (overrides name in config)")
	promptOnly := flag.Bool("prompt", false, "print the rendered prompt and exit")
	verbose := flag.Bool("verbose", false, "log completion calls to stderr")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fatalf("%v", err)
	}

	if err := run(*configPath, *transcriptPath, *name, *promptOnly, *verbose); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+fmt.Sprintf(format, args...))
	os.Exit(1)
}

// run loads configuration and transcript, builds the imitator, and dispatches
// to prompt printing, a single reply, or the interactive chat loop.
func run(configPath, transcriptPath, name string, promptOnly, verbose bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		return err
	}

	tr, err := engine.LoadTranscript(transcriptPath)
	if err != nil {
		return err
	}

	var logWriter io.Writer
	if verbose {
		logWriter = os.Stderr
	}

	im, err := buildImitator(cfg, tr, name, logWriter)
	if err != nil {
		return err
	}

	if promptOnly {
		prompt, err := im.RenderPrompt()
		if err != nil {
			return err
		}

		fmt.Println(prompt)
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return replyOnce(ctx, im)
	}

	return chatLoop(ctx, im, tr.Target)
}

// replyOnce generates a single reply for the transcript's target conversation
// and prints it. Used when stdin is not a terminal.
func replyOnce(ctx context.Context, im *imitator.Imitator) error {
	reply, err := im.GenerateReply(ctx)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

// chatLoop reads user input line by line, appends each line to the target
// conversation, and prints the generated reply. The reply is appended too,
// so the conversation keeps growing across exchanges. It exits cleanly on
// EOF or Ctrl+C.
func chatLoop(ctx context.Context, im *imitator.Imitator, target *conversation.Conversation) error {
	if target == nil {
		target = conversation.New()
		im.SetConversationContext(target)
	}

	fmt.Println(dimStyle.Render("imitator — type a message, Ctrl+D to exit"))

	reader := bufio.NewReader(os.Stdin)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Print(youPrefixStyle.Render("you>") + " ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		target.Append(userSpeaker, input)

		reply, err := im.GenerateReply(ctx)
		if err != nil {
			if errors.Is(err, imitator.ErrNoCompleter) {
				return err
			}

			fmt.Println(errorStyle.Render("error: ") + err.Error())
			continue
		}

		target.Append(imitatorSpeaker, reply)

		fmt.Println(replyPrefixStyle.Render("imitator>") + replyBlockStyle.Render(reply))
	}
}
