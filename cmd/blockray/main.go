// Command blockray casts a ray through a flat test world and prints what it
// finds along the way.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/blockray/oerror"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "blockray.toml", "path to the configuration file")
	mode := flag.String("mode", "", "trace, fill or dig (overrides the configuration)")
	maxDist := flag.Float64("max", -1, "maximum ray distance (overrides the configuration)")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	c, err := readConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *mode != "" {
		c.Ray.Mode = *mode
	}
	if *maxDist >= 0 {
		c.Ray.MaxDistance = *maxDist
	}
	if lvl, err := logrus.ParseLevel(c.Log.Level); err == nil {
		log.Level = lvl
	} else {
		log.Warnf("unknown log level %q, using info", c.Log.Level)
	}

	if c.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: c.Sentry.DSN}); err != nil {
			log.Errorf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(time.Second * 5)
	}
	if c.Debug.StatsView {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(c.Debug.StatsAddr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	if err := run(c, log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// run executes the ray query described by c.
func run(c config, log *logrus.Logger) (err error) {
	defer func() {
		if v := recover(); v != nil {
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("mode", c.Ray.Mode)
			})
			hub.Recover(oerror.New("%v", v))
			hub.Flush(time.Second * 5)
			err = fmt.Errorf("panic during %s: %v", c.Ray.Mode, v)
		}
	}()

	cs, err := c.caster(log)
	if err != nil {
		return err
	}
	origin, err := vec3(c.Ray.Origin)
	if err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	dir, err := vec3(c.Ray.Direction)
	if err != nil {
		return fmt.Errorf("direction: %w", err)
	}
	r := ray{origin: origin, dir: dir, maxDist: c.Ray.MaxDistance}
	g := flatWorld(c.World.Radius, c.World.PlaneY)
	log.Debugf("built flat world with %v blocks in %v chunks", g.Len(), g.Chunks())

	switch c.Ray.Mode {
	case "trace":
		trail, err := trace(cs, g, r)
		if err != nil {
			return err
		}
		for _, h := range trail.Cells() {
			fmt.Printf("%v %-8v point=%v normal=%v dist=%.4f\n", h.Pos, h.Kind, fmtVec(h.Point), fmtVec(h.Normal), h.Distance)
		}
		log.Infof("visited %v cells, %v hit", trail.Len(), trail.HitCount())
	case "fill":
		filled, err := fill(cs, g, r, c.World.PlaneY)
		if err != nil {
			return err
		}
		for _, pos := range filled {
			fmt.Println(pos)
		}
		log.Infof("filled %v cells", len(filled))
	case "dig":
		removed, next, dug, found, err := dig(cs, g, r)
		if err != nil {
			return err
		}
		if !dug {
			log.Info("the ray did not hit any block")
			return nil
		}
		fmt.Printf("removed %v at %v\n", removed.Pos, fmtVec(removed.Point))
		if found {
			fmt.Printf("next %v at %v\n", next.Pos, fmtVec(next.Point))
		} else {
			log.Info("no block behind the removed one")
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Ray.Mode)
	}
	return nil
}

func fmtVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v[0], v[1], v[2])
}
