// Package docs Organization Directory API.
//
// Справочник организаций: здания, организации и трёхуровневый
// классификатор деятельностей. Предоставляет API для управления
// справочником и выборок по его связям.
//
// Основные возможности:
// - CRUD по зданиям, организациям и деятельностям
// - Дерево деятельностей глубиной не более трёх уровней
// - Фильтрация организаций по зданию и деятельности (с потомками)
// - Поиск организаций и деятельностей по подстроке имени
// - Геопоиск зданий в круглой или квадратной зоне вокруг точки
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
