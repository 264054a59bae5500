// Package dtox copies data between domain structs and transport DTOs.
//
// Copy moves every exported field of the source into the like-named field of
// the destination. Types that do not line up are bridged by the converter
// registry of package convx, then by numeric and named-type conversion, then
// by copying nested structs field by field:
//
//	type Order struct {
//		ID     string
//		Amount decimal.Decimal
//		Notes  string `dtox:"-"`
//	}
//
//	type OrderDTO struct {
//		ID     string
//		Amount float64 // decimal.Decimal -> float64 through the registry
//		Total  string  `dtox:"name=Amount"`
//	}
//
//	var dto OrderDTO
//	err := dtox.Copy(order, &dto)
//
// A field tagged `dtox:"-"` or `dtox:"transient"` on either side is never
// copied. Fields that cannot be converted are skipped with a warning unless
// Options.Strict is set.
//
// Mapper wraps the copier in a typed API:
//
//	mapper := dtox.NewMapper[UserDTO, User]().
//		WithFieldMapping("Name", "FirstName").
//		WithTagValidation().
//		AutoMapFields(dtox.SnakeToCamelMatch)
//
//	user, err := mapper.ToModel(dto)
//	users, err := mapper.ToModelsParallel(ctx, dtos, 8)
//
// Rules can be attached without struct tags:
//
//	mapper.WithRules([]dtox.ValidationRule{
//		{FieldName: "Name", Validator: dtox.Required},
//		{FieldName: "Code", Validator: dtox.Pattern(`^[A-Z]{3}$`)},
//	})
package dtox
