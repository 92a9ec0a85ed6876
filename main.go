package main

import (
	"flag"
	_ "net/http/pprof"

	"github.com/joho/godotenv"

	"github.com/dropradar/DropRadar/api/router"
	"github.com/dropradar/DropRadar/app"
	"github.com/dropradar/DropRadar/config"
	"github.com/dropradar/DropRadar/logger/xzap"
	"github.com/dropradar/DropRadar/service/svc"
	service "github.com/dropradar/DropRadar/service/v1"
)

const defaultConfigPath = "./config/config.toml"

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	flag.Parse()

	// .env为可选，线上环境直接用环境变量
	_ = godotenv.Load()

	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		panic(err)
	}

	for _, chain := range c.ChainSupported {
		if chain.ID == "" || chain.Name == "" {
			panic("invalid chain_supported config")
		}
	}

	if err := xzap.SetUp(c.Log.Level); err != nil {
		panic(err)
	}

	serverCtx, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	r := router.NewRouter(serverCtx)

	// 定时拉取行情数据补充空投列表
	if c.Market.Enable {
		if _, err := service.StartMarketScheduler(serverCtx); err != nil {
			panic(err)
		}
	}

	app, err := app.NewPlatform(c, r, serverCtx)
	if err != nil {
		panic(err)
	}
	app.Start()
}
