package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/godel-labs/go-podgen/internal/prompt"
	"github.com/godel-labs/go-podgen/pkg/engine"
	"github.com/godel-labs/go-podgen/pkg/fragment"
	pkgtemplate "github.com/godel-labs/go-podgen/pkg/template"
)

func main() {
	agentID := flag.String("agent-id", "", "agent identifier substituted into the pod name and labels")
	namespace := flag.String("namespace", pkgtemplate.DefaultNamespace, "target namespace")
	image := flag.String("image", pkgtemplate.DefaultImage, "container image reference")
	cpu := flag.String("cpu", pkgtemplate.DefaultCPULimit, "CPU limit and request")
	memory := flag.String("memory", pkgtemplate.DefaultMemoryLimit, "memory limit and request")
	templatePath := flag.String("template", "", "custom template file (embedded stock template if empty)")
	output := flag.String("out", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for variables the template needs but the flags did not provide")

	var envs []fragment.EnvVar
	flag.Func("env", "environment variable as NAME=VALUE (repeatable)", func(raw string) error {
		name, value, ok := strings.Cut(raw, "=")
		if !ok || name == "" {
			return fmt.Errorf("expected NAME=VALUE, got %q", raw)
		}
		envs = append(envs, fragment.EnvVar{Name: name, Value: value})
		return nil
	})

	var mounts []fragment.Mount
	flag.Func("mount", "volume mount as NAME=PATH (repeatable)", func(raw string) error {
		name, path, ok := strings.Cut(raw, "=")
		if !ok || name == "" || path == "" {
			return fmt.Errorf("expected NAME=PATH, got %q", raw)
		}
		mounts = append(mounts, fragment.Mount{Name: name, Path: path})
		return nil
	})

	var volumes []fragment.Volume
	flag.Func("configmap-volume", "volume backed by a ConfigMap as NAME=CONFIGMAP (repeatable)", func(raw string) error {
		name, configMap, ok := strings.Cut(raw, "=")
		if !ok || name == "" || configMap == "" {
			return fmt.Errorf("expected NAME=CONFIGMAP, got %q", raw)
		}
		volumes = append(volumes, fragment.ConfigMapVolume(name, configMap))
		return nil
	})
	flag.Func("emptydir-volume", "volume backed by scratch space, by name (repeatable)", func(name string) error {
		if name == "" {
			return fmt.Errorf("volume name is required")
		}
		volumes = append(volumes, fragment.EmptyDirVolume(name))
		return nil
	})

	flag.Parse()

	ctx := context.Background()

	varOpts := []pkgtemplate.VariableOption{
		pkgtemplate.WithNamespace(*namespace),
		pkgtemplate.WithImage(*image),
		pkgtemplate.WithCPULimit(*cpu),
		pkgtemplate.WithMemoryLimit(*memory),
	}
	if len(envs) > 0 {
		varOpts = append(varOpts, pkgtemplate.WithEnvVars(fragment.EnvVars(envs)))
	}
	if len(mounts) > 0 {
		varOpts = append(varOpts, pkgtemplate.WithVolumeMounts(fragment.VolumeMounts(mounts)))
	}
	if len(volumes) > 0 {
		varOpts = append(varOpts, pkgtemplate.WithVolumes(fragment.Volumes(volumes)))
	}
	vars := pkgtemplate.NewVariables(*agentID, varOpts...)

	if vars.AgentID == "" && !*interactive {
		log.Fatalf("missing -agent-id (or use -interactive)")
	}

	for _, q := range []struct{ name, value string }{
		{"cpu", vars.CPULimit},
		{"memory", vars.MemoryLimit},
	} {
		if _, err := resource.ParseQuantity(q.value); err != nil {
			log.Fatalf("invalid -%s %q: %v", q.name, q.value, err)
		}
	}

	values := vars.Map()
	if *interactive && vars.AgentID == "" {
		// Only absent keys count as missing; drop the empty agent id so the
		// prompt round asks for it.
		delete(values, "AGENT_ID")
	}

	var engineOpts []engine.Option
	if *templatePath != "" {
		engineOpts = append(engineOpts, engine.WithTemplatePath(*templatePath))
	}
	eng := engine.New(engineOpts...)

	rendered, err := eng.RenderValues(ctx, values)
	if err != nil && *interactive {
		var missing pkgtemplate.MissingVariablesError
		if errors.As(err, &missing) {
			answers, perr := prompt.CollectValues(ctx, prompt.NewSurveyDriver(), missing.Names)
			if perr != nil {
				log.Fatalf("Prompt failed: %v", perr)
			}
			for name, value := range answers {
				values[name] = value
			}
			rendered, err = eng.RenderValues(ctx, values)
		}
	}
	if err != nil {
		log.Fatalf("Failed to render manifest: %v", err)
	}

	m, err := eng.Validate(rendered)
	if err != nil {
		log.Fatalf("Rendered manifest failed validation: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write manifest: %v", err)
		}
		fmt.Printf("Manifest written to %s\n", *output)
		fmt.Printf("  Pod name: %s\n", m.Name())
		fmt.Printf("  Runtime class: %s\n", m.RuntimeClassName())
	} else {
		fmt.Print(rendered)
		fmt.Fprintf(os.Stderr, "Pod name: %s\n", m.Name())
		fmt.Fprintf(os.Stderr, "Runtime class: %s\n", m.RuntimeClassName())
	}
}
