package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Ratio1/thirdweb_sdk_go/pkg/thirdweb"
	"github.com/Ratio1/thirdweb_sdk_go/pkg/thirdweb_sdk"
)

// envFileList collects repeated -env-file flags.
type envFileList []string

func (l *envFileList) String() string {
	return strings.Join(*l, ",")
}

func (l *envFileList) Set(path string) error {
	if path = strings.TrimSpace(path); path != "" {
		*l = append(*l, path)
	}
	return nil
}

// paths returns the collected files, or .env when none were given.
func (l envFileList) paths() []string {
	if len(l) == 0 {
		return []string{".env"}
	}
	return l
}

func main() {
	var envFiles envFileList
	flag.Var(&envFiles, "env-file", "path of a .env file to load; repeatable (default .env)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	request := flag.String("request", "", "optional API path to GET with the configured client")
	timeout := flag.Duration("timeout", 10*time.Second, "timeout for -request")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("parse log level: %v", err)
	}
	log.SetLevel(level)

	if err := thirdweb_sdk.LoadDotEnv(envFiles.paths()...); err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Loading .env files")
	}

	client, err := thirdweb_sdk.NewFromEnv(thirdweb_sdk.WithLogger(log.StandardLogger()))
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Initialising thirdweb client")
	}

	fmt.Printf("thirdweb client ready: client_id=%s base_url=%s\n", thirdweb.MaskClientID(client.ClientID()), client.BaseURL())

	if *request == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := get(ctx, client, *request); err != nil {
		log.WithFields(log.Fields{"path": *request, "err": err}).Fatal("Request failed")
	}
}

func get(ctx context.Context, client *thirdweb.Client, path string) error {
	resp, err := client.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	fmt.Printf("%s %s\n", resp.Proto, resp.Status)
	_, err = io.Copy(os.Stdout, resp.Body)
	return err
}
