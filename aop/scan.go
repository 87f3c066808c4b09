package aop

import (
	"fmt"

	"github.com/gomelon/meta"
)

// Scan loads the package pkgPath, resolved from workdir, and returns the
// aop:aspect directives of each struct keyed by type name, in source order.
// Structs without directives are left out.
func Scan(workdir, pkgPath string) (map[string][]*AspectMeta, error) {
	packageParser := meta.NewPackageParser(workdir)
	if err := packageParser.Load(pkgPath); err != nil {
		return nil, fmt.Errorf("aop: load package %s: %w", pkgPath, err)
	}
	if packageParser.Package(pkgPath) == nil {
		return nil, fmt.Errorf("aop: package %s not found from %s", pkgPath, workdir)
	}

	metaParser := meta.NewMetaParser(packageParser, pkgPath, AllMetas())
	result := map[string][]*AspectMeta{}
	for object, metaGroups := range metaParser.FindByMetaName(MetaAopAspect) {
		for _, m := range metaGroups[MetaAopAspect] {
			aspectMeta, ok := m.(*AspectMeta)
			if !ok || aspectMeta.Value == "" {
				continue
			}
			result[object.Name()] = append(result[object.Name()], aspectMeta)
		}
	}
	logger().Debug().
		Str("package", pkgPath).
		Int("structs", len(result)).
		Msg("Scanned aspect directives")
	return result, nil
}
