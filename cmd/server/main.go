package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/qnkhuat/tetristerm/pkg"
)

var (
	info = color.New(color.FgGreen).PrintfFunc()
	warn = color.New(color.FgYellow).PrintfFunc()
	fail = color.New(color.FgRed, color.Bold).PrintfFunc()
)

func main() {
	listen := flag.String("listen", pkg.SSHPort, "address to accept SSH connections on")
	binary := flag.String("binary", "./tetristerm", "path to the tetristerm client")
	hostKey := flag.String("hostkey", "", "SSH host key file (generated when empty)")
	idle := flag.Duration("idle", pkg.ServerIdleTimeout, "disconnect sessions idle for this long")
	logPath := flag.String("log", "./server.log", "path to log file")
	flag.Parse()

	f, err := pkg.InitLog(*logPath, "SERVER: ")
	if err != nil {
		fail("%s\n", err)
		os.Exit(1)
	}
	defer f.Close()

	s, err := pkg.NewServer(*listen, *binary, *hostKey, *idle)
	if err != nil {
		log.Println(err)
		fail("%s\n", err)
		os.Exit(1)
	}

	go func() {
		log.Printf("Listening at %s", *listen)
		info("Listening for SSH connections at %s\n", *listen)

		if err := s.ListenAndServe(); err != nil {
			log.Println(err)
			warn("%s\n", err)
		}
	}()

	// Keep the server up until terminated
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc

	sessions := s.Sessions()
	warn("Shutting down, disconnecting %d player(s)\n", len(sessions))
	for _, sess := range sessions {
		log.Printf("Disconnecting %s (%s)", sess.Nick, sess.ID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Println(err)
		s.Close()
	}
}
