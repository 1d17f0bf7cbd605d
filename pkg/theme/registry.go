package theme

// registry 全部已注册主题，启动时注册完成后只读
var registry = map[string]*Config{}

// order 注册顺序，保证列表接口输出稳定
var order []string

// register 注册主题，重复ID直接panic，属于编码错误
func register(cfg *Config) {
	if _, exists := registry[cfg.ID]; exists {
		panic("主题ID重复注册: " + cfg.ID)
	}
	registry[cfg.ID] = cfg
	order = append(order, cfg.ID)
}

// Get 按ID取主题，未注册时返回false而非nil解引用
func Get(id string) (*Config, bool) {
	cfg, ok := registry[id]
	return cfg, ok
}

// All 全部主题，按注册顺序
func All() []*Config {
	result := make([]*Config, 0, len(order))
	for _, id := range order {
		result = append(result, registry[id])
	}
	return result
}

// ByCategory 按分类筛选
func ByCategory(category string) []*Config {
	var result []*Config
	for _, cfg := range All() {
		if cfg.Category == category {
			result = append(result, cfg)
		}
	}
	return result
}

// Free 免费主题
func Free() []*Config {
	var result []*Config
	for _, cfg := range All() {
		if !cfg.IsPremium {
			result = append(result, cfg)
		}
	}
	return result
}

// Premium 付费主题
func Premium() []*Config {
	var result []*Config
	for _, cfg := range All() {
		if cfg.IsPremium {
			result = append(result, cfg)
		}
	}
	return result
}
