package config

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/model"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

type Config struct {
	Log        logx.LogConf
	HumanFirst bool   `json:",default=true"`
	Color      string `json:",default=on"`
	Search     struct {
		MaxDepth int `json:",default=2"`
	}
	Record struct {
		Interval time.Duration `json:",default=1s"`
	}
	Pprof struct {
		Enable bool   `json:",optional"`
		Addr   string `json:",default=localhost:6060"`
	}
}

func Load(file string) (c Config, err error) {
	if err = conf.Load(file, &c); err != nil {
		return c, errors.Wrapf(err, "load %s", file)
	}
	return c, c.Validate()
}

func LoadFromYamlBytes(content []byte) (c Config, err error) {
	if err = conf.LoadFromYamlBytes(content, &c); err != nil {
		return c, errors.WithStack(err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Search.MaxDepth < 1 {
		return errors.Errorf("Search.MaxDepth must be at least 1, got %d", c.Search.MaxDepth)
	}
	var color model.Config
	if err := color.Set(c.Color); err != nil {
		return errors.Wrap(err, "Color")
	}
	return nil
}

func (c Config) Colored() bool {
	return bool(model.NewConfig(c.Color))
}
