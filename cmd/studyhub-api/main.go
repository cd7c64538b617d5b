package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/studyhub/internal/buildinfo"
	"github.com/dmitrijs2005/studyhub/internal/config"
	"github.com/dmitrijs2005/studyhub/internal/httpapi"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := httpapi.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
