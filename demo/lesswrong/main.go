package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MrToph/lesswrong-api/pkg/config"
	"github.com/MrToph/lesswrong-api/pkg/lesswrong"
)

// environment variables
const (
	configEnv = "LESSWRONG_CONFIG"
	postEnv   = "LESSWRONG_POST_ID"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	postID := flag.String("post", os.Getenv(postEnv), "post id to fetch")
	limit := flag.Int("limit", 20, "maximum number of comments")
	flag.Parse()
	if *postID == "" {
		*postID = "7ZqGiPHTpiDMwqMN2"
	}

	cfg, err := loadConfig(os.Getenv(configEnv))
	if err != nil {
		return err
	}

	zl, err := zapLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = zl.Sync()
	}()

	client := lesswrong.NewClientFromConfig(cfg, lesswrong.WithLogger(zl))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	post, err := client.GetPost(ctx, *postID)
	if err != nil {
		return err
	}
	fmt.Printf("%s\nby %s, %s, score %.0f\n%s\n\n",
		post.Title, post.Author, post.PostedAt.Format("2006-01-02"), post.BaseScore, post.PageURL)

	comments, err := client.GetComments(ctx, *postID, *limit)
	if err != nil {
		return err
	}
	fmt.Printf("%d comments\n", len(comments))
	for _, thread := range lesswrong.BuildTree(comments) {
		thread.Walk(func(depth int, c lesswrong.Comment) {
			text := c.PlainText()
			if r := []rune(text); len(r) > 80 {
				text = string(r[:77]) + "..."
			}
			fmt.Printf("%s- %s (%.0f): %s\n", strings.Repeat("  ", depth), c.Author, c.BaseScore, text)
		})
	}
	return nil
}

// loadConfig reads the YAML config at path, or uses defaults when path is empty.
func loadConfig(path string) (*config.Client, error) {
	loader := config.DefaultLoader()
	if path == "" {
		return loader.Parse([]byte("{}"))
	}
	return loader.Load(path)
}

var encoderCfg = zapcore.EncoderConfig{
	MessageKey:     "msg",
	LevelKey:       "level",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	NameKey:        "logger",
	CallerKey:      "caller",
	EncodeCaller:   zapcore.ShortCallerEncoder,
	TimeKey:        "time",
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
}

func zapLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zl := zap.New(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(zapcore.AddSync(w)),
			lvl,
		),
		zap.AddCaller(),
	)
	return zl, nil
}
