// Command ytsum calculates the total video runtime of a YouTube
// channel's public uploads.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/joho/godotenv"

	"ytsum"
	"ytsum/config"
	"ytsum/httpx"
	"ytsum/logctx"
	"ytsum/youtube"
)

const usage = `Description:
YouTube API tool for calculating the video runtime sum of a channel.

Usage:
ytsum [-k api_key] [-s [start_date]] [-e [end_date]] [-o output_file] [channel_name]

Options:
-k  YouTube Data API key supplied in plain text.
      If empty, the key is read from YTSUM_API_KEY, a config file, or
      the 'config/key.txt' file, in that order.
-s
-e  Filter the videos by publish date, giving a start and/or end date
      for the active interval. Dates are expected in RFC3339 format,
      i.e. 'yyyy-mm-ddTHH:MM:SSZ' (note the UTC timezone).
      If the timestamp is omitted, it is asked interactively.
-o  Output file (default 'output.txt').
-c  Config file path (YAML; also CONFIG_PATH or ./local.yaml).
-h  Display this help and exit.

Parameters:
channel_name  Human-readable name of the channel, with or without the
                '@' prefix. If omitted, it is asked interactively.

Output:
The aggregated video duration total is displayed interactively.
A full list of the videos is saved to the output file in CSV format;
if the process could not complete, that file instead contains the last
intermediate JSON response to help figure out what went wrong.
`

const helpHint = "Run with '-h' option to display help."

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	for _, a := range args {
		if a == "-h" || a == "--help" {
			fmt.Print(usage)
			return nil
		}
	}

	// Optional .env for YTSUM_* variables.
	_ = godotenv.Load()

	var (
		key, channel     string
		startRaw, endRaw string
		askStart, askEnd bool
		outputFlag       string
		configPath       string
	)

	takesValue := func(i int) (string, bool) {
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			return args[i+1], true
		}
		return "", false
	}

	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "-") {
			switch a {
			case "-k":
				if v, ok := takesValue(i); ok {
					i++
					key = v
				}
			case "-s":
				if v, ok := takesValue(i); ok {
					i++
					if v == "" {
						askStart = true
					} else {
						startRaw = v
					}
				} else {
					askStart = true
				}
			case "-e":
				if v, ok := takesValue(i); ok {
					i++
					if v == "" {
						askEnd = true
					} else {
						endRaw = v
					}
				} else {
					askEnd = true
				}
			case "-o":
				if v, ok := takesValue(i); ok {
					i++
					outputFlag = v
				} else {
					fmt.Printf("Warning: -o requires a file name!\n%s\n", helpHint)
					return nil
				}
			case "-c":
				if v, ok := takesValue(i); ok {
					i++
					configPath = v
				} else {
					fmt.Printf("Warning: -c requires a file path!\n%s\n", helpHint)
					return nil
				}
			default:
				fmt.Printf("Warning: Invalid argument(s)!\n%s\n", helpHint)
				return nil
			}
		} else if i == len(args)-1 {
			channel = a
		} else {
			fmt.Printf("Warning: Invalid argument(s)!\n%s\n", helpHint)
			return nil
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := logctx.Into(context.Background(), logger)

	// Key resolution: -k flag, then env/config, then key file.
	if key == "" {
		key = cfg.APIKey
	}
	if key == "" {
		fmt.Printf("Info: No API key supplied, trying '%s' file...\n", cfg.KeyFile)
		key, err = config.LoadKeyFile(cfg.KeyFile)
		if err != nil {
			return err
		}
		fmt.Println("Successfully loaded API key.")
	}

	stdin := bufio.NewScanner(os.Stdin)

	var start, end time.Time
	if startRaw != "" {
		if start, err = time.Parse(time.RFC3339, startRaw); err != nil {
			return fmt.Errorf("could not parse start timestamp %q: %w", startRaw, err)
		}
	}
	if endRaw != "" {
		if end, err = time.Parse(time.RFC3339, endRaw); err != nil {
			return fmt.Errorf("could not parse end timestamp %q: %w", endRaw, err)
		}
	}

	if channel == "" {
		channel, err = promptChannel(stdin)
		if err != nil {
			return err
		}
	}
	channel = strings.Trim(strings.TrimSpace(channel), "@")

	if askStart {
		if start, err = promptDate(stdin, "Filter to dates starting from:"); err != nil {
			return err
		}
	}
	if askEnd {
		if end, err = promptDate(stdin, "Filter to dates ending at:"); err != nil {
			return err
		}
	}

	output := cfg.Output
	if outputFlag != "" {
		output = outputFlag
	}

	client := youtube.NewClient(httpx.New(&httpx.Config{
		UserAgent:         "ytsum/1.0",
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             1,
	}), key)

	result, err := ytsum.Run(ctx, client, ytsum.Query{
		Channel:  channel,
		Start:    start,
		End:      end,
		Sink:     &youtube.FileSink{Path: output},
		Progress: progressPrinter(os.Stderr),
	})
	if err != nil {
		// The output file still holds the last raw API response.
		return err
	}
	if result == nil {
		fmt.Println("Warning: channel lookup did not return exactly one result; nothing to do.")
		return nil
	}

	if err := ytsum.WriteReport(output, result.Videos); err != nil {
		return err
	}

	fmt.Println(result.Summary())
	fmt.Printf("Video list written to '%s' (%d videos).\n", output, len(result.Videos))
	return nil
}

// promptChannel asks for a channel name until a plausible one is
// supplied: non-empty, ASCII, no inner whitespace.
func promptChannel(stdin *bufio.Scanner) (string, error) {
	for {
		fmt.Println("Channel name:")
		if !stdin.Scan() {
			if err := stdin.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("stdin closed while waiting for channel name")
		}
		name := strings.TrimSpace(stdin.Text())
		switch {
		case name == "":
			fmt.Println("Warning: Empty name supplied!")
		case !isPlainName(name):
			fmt.Println("Warning: Invalid character supplied!")
		default:
			return name, nil
		}
	}
}

func isPlainName(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// promptDate asks for an RFC3339 timestamp until one parses.
func promptDate(stdin *bufio.Scanner, prompt string) (time.Time, error) {
	for {
		fmt.Println(prompt)
		if !stdin.Scan() {
			if err := stdin.Err(); err != nil {
				return time.Time{}, err
			}
			return time.Time{}, fmt.Errorf("stdin closed while waiting for timestamp")
		}
		raw := strings.TrimSpace(stdin.Text())
		t, err := time.Parse(time.RFC3339, raw)
		if err == nil {
			return t, nil
		}
		fmt.Printf("Warning: Could not parse timestamp %q: %v\n", raw, err)
		fmt.Println("Note: RFC3339 format required, i.e. 'yyyy-mm-ddTHH:MM:SSZ'")
	}
}

// progressPrinter reports fetch progress in 10% steps.
func progressPrinter(w io.Writer) func(done, total int) {
	lastDecile := 0
	return func(done, total int) {
		if total == 0 {
			return
		}
		decile := done * 10 / total
		for lastDecile < decile {
			lastDecile++
			fmt.Fprintf(w, "%d%%.. ", lastDecile*10)
		}
		if done == total {
			fmt.Fprintln(w)
		}
	}
}
