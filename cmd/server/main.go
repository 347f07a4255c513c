package main

import (
	"log"

	"khanhomstore/internal/config"
	"khanhomstore/internal/db"
	"khanhomstore/internal/handlers"
	"khanhomstore/internal/repository"
	"khanhomstore/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()
	db.Probe(gdb)

	images, err := storage.NewImageStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal(err)
	}

	h := handlers.NewProductHandler(repository.NewProducts(gdb), images)
	r := handlers.NewRouter(h, images, sqlDB.Ping)

	log.Println("Server listening on :" + cfg.AppPort)
	log.Fatal(r.Run(":" + cfg.AppPort))
}
