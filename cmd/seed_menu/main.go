// seed_menu restablece el catálogo y el staff por defecto en el espejo configurado
// (STORAGE_DRIVER) y, con postgres, coteja los ingresos persistidos.
//
// Uso: go run ./cmd/seed_menu [-staff] [-dry-run]
//
//	-staff    también restablece los usuarios al staff por defecto (borra clientes)
//	-dry-run  solo muestra lo que se escribiría
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/burger-house/internal/infrastructure/storage"
	"github.com/jhoicas/burger-house/internal/store"
	"github.com/jhoicas/burger-house/pkg/config"
	"github.com/jhoicas/burger-house/pkg/logger"
)

func main() {
	withStaff := flag.Bool("staff", false, "restablecer también el staff por defecto")
	dryRun := flag.Bool("dry-run", false, "no escribir nada")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed_menu")

	menu := store.DefaultMenu()
	staff := store.DefaultStaff()
	if *dryRun {
		for _, it := range menu {
			fmt.Printf("%3d  %-28s %-9s %8s\n", it.ID, it.Name, it.Category, it.Price.StringFixed(2))
		}
		if *withStaff {
			for _, u := range staff {
				fmt.Printf("     %-12s %-14s %s\n", u.ID, u.Name, u.Role)
			}
		}
		return
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir espejo: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	prefix := cfg.Storage.KeyPrefix
	if err := backend.Store.Save(ctx, prefix+store.KeyMenu, menu); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir catálogo: %v\n", err)
		os.Exit(1)
	}
	log.Info().Int("items", len(menu)).Msg("catálogo restablecido")

	if *withStaff {
		if err := backend.Store.Save(ctx, prefix+store.KeyUsers, staff); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir staff: %v\n", err)
			os.Exit(1)
		}
		if err := backend.Store.Delete(ctx, prefix+store.KeySession); err != nil {
			fmt.Fprintf(os.Stderr, "Borrar sesión: %v\n", err)
			os.Exit(1)
		}
		log.Info().Int("users", len(staff)).Msg("staff restablecido")
	}

	if backend.Postgres != nil {
		revenue, err := backend.Postgres.Revenue(ctx, prefix+store.KeyOrders)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Calcular ingresos: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Ingresos persistidos (sin cancelados): %s\n", revenue.StringFixed(2))
	}
}
