package main

import (
	"homiio/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AddressModel{},
		model.PropertyModel{},
		model.SavedPropertyModel{},
		model.SavedPropertyFolderModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
