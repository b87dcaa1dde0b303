package ioc

import "gitee.com/flycash/school-notification/internal/pkg/catalog"

func InitCatalog() catalog.Catalog {
	c, err := catalog.Default()
	if err != nil {
		panic(err)
	}
	return c
}
