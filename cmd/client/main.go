package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atinyakov/oceanview/internal/client"
)

var (
	version   string
	buildDate string
)

// main parses command-line flags and starts the interactive shell.
func main() {
	var (
		baseURL     string
		sessionPath string
		noSession   bool
		showVer     bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&sessionPath, "session", client.DefaultSessionPath(), "file that keeps the session token")
	flag.BoolVar(&noSession, "no-session", false, "do not read or write the session file")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("Ocean View Resort Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	api := client.New(baseURL, nil)
	shell := &client.Shell{
		API:     api,
		Prompt:  client.NewPrompter(os.Stdin, os.Stdout),
		Out:     os.Stdout,
		BaseURL: baseURL,
	}

	if !noSession {
		session := &client.SessionFile{Path: sessionPath}
		token, err := session.Load(baseURL)
		if err != nil {
			log.Printf("ignoring session file: %v", err)
		}
		if token != "" {
			api.SetToken(token)
			if user, err := api.Me(); err == nil {
				fmt.Printf("Resumed session for %s\n", user)
			} else {
				api.SetToken("")
				_ = session.Clear()
			}
		}
		shell.Session = session
	}

	fmt.Println("Ocean View Resort. Type 'help' for a list of commands.")
	shell.Run()
}
