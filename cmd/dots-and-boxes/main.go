package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HuXin0817/dots-and-boxes-minimax/internal/config"
	"github.com/HuXin0817/dots-and-boxes-minimax/internal/controller"
	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/pusher"
	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/pprof"
	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile = flag.String("f", "etc/dots-and-boxes.yaml", "the config file")
	simulate   = flag.Int("simulate", 0, "play this many engine games against a random opponent and exit")
	depth      = flag.Int("depth", 0, "override Search.MaxDepth")
	seed       = flag.Int64("seed", 0, "random seed for -simulate, 0 uses the clock")
	color      = model.On
)

func init() {
	flag.Var(&color, "color", "colour the board (on|off)")
}

func main() {
	flag.Parse()

	c, err := config.Load(*configFile)
	logx.Must(err)
	if *depth > 0 {
		c.Search.MaxDepth = *depth
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "color" {
			c.Color = color.String()
		}
	})

	logx.MustSetup(c.Log)
	defer logx.Close()

	if c.Pprof.Enable {
		pprof.Start(c.Pprof.Addr)
	}

	if *simulate > 0 {
		runSimulation(c)
		return
	}

	records := pusher.NewPusher(
		pusher.WithPushInterval[string](c.Record.Interval),
		pusher.WithPushLogic(func(messages ...string) error {
			for _, m := range messages {
				logx.Info(m)
			}
			return nil
		}),
	)
	records.Start()
	defer records.Stop()

	ctx := context.Background()
	options := []controller.Option{
		controller.WithColor(c.Colored()),
		controller.WithRecords(records),
	}
	if !c.HumanFirst {
		options = append(options, controller.WithComputerFirst())
	}

	engine := assess.NewEngine(ctx, assess.WithMaxDepth(c.Search.MaxDepth))
	ctrl := controller.New(ctx, os.Stdin, os.Stdout, engine, options...)
	if err := ctrl.Run(); err != nil {
		logx.Errorf("game %s stopped after %d moves: %v", ctrl.Uid().Short(), ctrl.Game().StepCount(), err)
		fmt.Println()
	}
}

func runSimulation(c config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logx.Infof("simulating %d games, depth %d, seed %d", *simulate, c.Search.MaxDepth, *seed)

	engine := assess.NewEngine(ctx, assess.WithMaxDepth(c.Search.MaxDepth))
	bar := model.NewBar(os.Stderr, *simulate, "Simulating...")
	s, err := controller.Simulate(ctx, engine, *simulate, rand.New(rand.NewSource(*seed)), bar)
	if err != nil {
		logx.Error(err)
	}

	fmt.Println()
	fmt.Println(s.Report(aurora.NewAurora(c.Colored())))
}
