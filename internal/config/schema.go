package config

import "github.com/invopop/jsonschema"

// Schema describes the config file layout for editors and CI validation.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  false,
	}
	schema := reflector.Reflect(new(File))
	schema.Title = "NFT Battle Arena configuration"
	schema.Description = "Fighter roster, battle tuning and arena rules loaded by arena-server"
	return schema
}
