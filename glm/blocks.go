package glm

import (
	"github.com/reoring/gonml"
	"github.com/reoring/gonml/rules"
)

// NewSetupBlock declares &glm_setup: lake discretization and the density
// model.
func NewSetupBlock() *gonml.Block {
	return gonml.NewBlock(Kind, "glm_setup",
		gonml.NewParam("sim_name", gonml.KindString),
		gonml.NewParam("max_layers", gonml.KindInt).GTE(0),
		gonml.NewParam("min_layer_vol", gonml.KindFloat).WithUnits("m^3"),
		gonml.NewParam("min_layer_thick", gonml.KindFloat).WithUnits("m"),
		gonml.NewParam("max_layer_thick", gonml.KindFloat).WithUnits("m"),
		gonml.NewParam("density_model", gonml.KindInt).Switch(1, 2, 3),
		gonml.NewParam("non_avg", gonml.KindBool),
	).Require()
}

// NewMixingBlock declares &mixing.
func NewMixingBlock() *gonml.Block {
	return gonml.NewBlock(Kind, "mixing",
		gonml.NewParam("surface_mixing", gonml.KindInt).Switch(0, 1, 2),
		gonml.NewParam("coef_mix_conv", gonml.KindFloat).GTE(0),
		gonml.NewParam("coef_wind_stir", gonml.KindFloat).GTE(0),
		gonml.NewParam("coef_mix_shear", gonml.KindFloat).GTE(0),
		gonml.NewParam("coef_mix_turb", gonml.KindFloat).GTE(0),
		gonml.NewParam("coef_mix_KH", gonml.KindFloat).GTE(0),
		gonml.NewParam("deep_mixing", gonml.KindInt).Switch(0, 1, 2),
		gonml.NewParam("coef_mix_hyp", gonml.KindFloat).GTE(0),
		gonml.NewParam("diff", gonml.KindFloat).GTE(0),
	)
}

// NewWQSetupBlock declares &wq_setup: the water-quality library coupling.
func NewWQSetupBlock() *gonml.Block {
	return gonml.NewBlock(Kind, "wq_setup",
		gonml.NewParam("wq_lib", gonml.KindString).Switch("aed2", "fabm"),
		gonml.NewParam("wq_nml_file", gonml.KindString),
		gonml.NewParam("bioshade_feedback", gonml.KindBool),
		gonml.NewParam("mobility_off", gonml.KindBool),
		gonml.NewParam("ode_method", gonml.KindInt),
		gonml.NewParam("split_factor", gonml.KindFloat).GTE(0).LTE(1),
		gonml.NewParam("repair_state", gonml.KindBool),
	)
}

// NewMorphometryBlock declares &morphometry: the hypsographic curve.
func NewMorphometryBlock() *gonml.Block {
	return gonml.NewBlock(Kind, "morphometry",
		gonml.NewParam("lake_name", gonml.KindString),
		gonml.NewParam("latitude", gonml.KindFloat).WithUnits("°N"),
		gonml.NewParam("longitude", gonml.KindFloat).WithUnits("°E"),
		gonml.NewParam("base_elev", gonml.KindFloat).WithUnits("m above datum"),
		gonml.NewParam("crest_elev", gonml.KindFloat).WithUnits("m above datum"),
		gonml.NewParam("bsn_len", gonml.KindFloat).WithUnits("m").GTE(0),
		gonml.NewParam("bsn_wid", gonml.KindFloat).WithUnits("m").GTE(0),
		gonml.NewParam("bsn_vals", gonml.KindInt).GTE(0),
		gonml.NewParam("H", gonml.KindFloat).List().WithUnits("m above datum").GTE(0),
		gonml.NewParam("A", gonml.KindFloat).List().WithUnits("m^2").GTE(0),
	).WithRules(
		rules.LenMatch("bsn_vals", "H", true),
		rules.LenMatch("bsn_vals", "A", true),
	).Require()
}

// NewTimeBlock declares &time: the simulation window. timefmt 2 runs to a
// stop timestamp, timefmt 3 runs for num_days.
func NewTimeBlock() *gonml.Block {
	return gonml.NewBlock(Kind, "time",
		gonml.NewParam("timefmt", gonml.KindInt).Switch(2, 3),
		gonml.NewParam("start", gonml.KindString).Datetime(dateLayouts...),
		gonml.NewParam("stop", gonml.KindString).Datetime(dateLayouts...),
		gonml.NewParam("dt", gonml.KindFloat).WithUnits("seconds").GTE(0),
		gonml.NewParam("num_days", gonml.KindInt).GTE(0),
		gonml.NewParam("timezone", gonml.KindFloat),
	).WithRules(
		rules.Incompatible("timefmt", 2, "stop", nil),
		rules.Incompatible("timefmt", 3, "num_days", nil),
	).Require()
}

// NewOutputBlock declares &output: NetCDF and CSV output selection.
func NewOutputBlock() *gonml.Block {
	return gonml.NewBlock(Kind, "output",
		gonml.NewParam("out_dir", gonml.KindString),
		gonml.NewParam("out_fn", gonml.KindString),
		gonml.NewParam("nsave", gonml.KindInt).GTE(0),
		gonml.NewParam("csv_lake_fname", gonml.KindString),
		gonml.NewParam("csv_point_nlevs", gonml.KindInt).GTE(0),
		gonml.NewParam("csv_point_fname", gonml.KindString),
		gonml.NewParam("csv_point_frombot", gonml.KindBool).List(),
		gonml.NewParam("csv_point_at", gonml.KindFloat).List(),
		gonml.NewParam("csv_point_nvars", gonml.KindInt).GTE(0),
		gonml.NewParam("csv_point_vars", gonml.KindString).List(),
		gonml.NewParam("csv_outlet_allinone", gonml.KindBool),
		gonml.NewParam("csv_outlet_fname", gonml.KindString),
		gonml.NewParam("csv_outlet_nvars", gonml.KindInt).GTE(0),
		gonml.NewParam("csv_outlet_vars", gonml.KindString).List(),
		gonml.NewParam("csv_ovrflw_fname", gonml.KindString),
	).WithRules(
		rules.LenMatch("csv_point_nlevs", "csv_point_at", true),
		rules.LenMatch("csv_point_nlevs", "csv_point_frombot", true),
		rules.LenMatch("csv_point_nvars", "csv_point_vars", true),
		rules.LenMatch("csv_outlet_nvars", "csv_outlet_vars", true),
	)
}

// NewInitProfilesBlock declares &init_profiles: the initial temperature and
// salinity profile plus water-quality initial values.
func NewInitProfilesBlock() *gonml.Block {
	return gonml.NewBlock(Kind, "init_profiles",
		gonml.NewParam("lake_depth", gonml.KindFloat).WithUnits("m"),
		gonml.NewParam("num_depths", gonml.KindInt).GTE(0),
		gonml.NewParam("the_depths", gonml.KindFloat).List().WithUnits("m"),
		gonml.NewParam("the_temps", gonml.KindFloat).List().WithUnits("°C"),
		gonml.NewParam("the_sals", gonml.KindFloat).List().WithUnits("ppt"),
		gonml.NewParam("num_wq_vars", gonml.KindInt).GTE(0),
		gonml.NewParam("wq_names", gonml.KindString).List(),
		gonml.NewParam("wq_init_vals", gonml.KindFloat).List(),
		gonml.NewParam("restart_variables", gonml.KindFloat).List(),
	).WithRules(
		rules.LenMatch("num_depths", "the_depths", true),
		rules.LenMatch("num_depths", "the_temps", true),
		rules.LenMatch("num_depths", "the_sals", true),
		rules.LenMatch("num_wq_vars", "wq_names", true),
	).Require()
}

// NewLightBlock declares &light. light_mode 0 uses a fixed extinction
// coefficient Kw, light_mode 1 uses per-band coefficients.
func NewLightBlock() *gonml.Block {
	return gonml.NewBlock(Kind, "light",
		gonml.NewParam("light_mode", gonml.KindInt).Switch(0, 1),
		gonml.NewParam("Kw", gonml.KindFloat).WithUnits("m^{-1}"),
		gonml.NewParam("Kw_file", gonml.KindString),
		gonml.NewParam("n_bands", gonml.KindInt).GTE(0),
		gonml.NewParam("light_extc", gonml.KindFloat).List(),
		gonml.NewParam("energy_frac", gonml.KindFloat).List(),
		gonml.NewParam("Benthic_Imin", gonml.KindFloat),
	).WithRules(
		rules.Incompatible("light_mode", 1, "n_bands", nil),
		rules.Incompatible("light_mode", 0, "Kw", nil),
		rules.When("light_mode", 1,
			rules.LenMatch("n_bands", "light_extc", false),
			rules.LenMatch("n_bands", "energy_frac", false),
		),
	)
}

// NewBirdModelBlock declares &bird_model: Bird solar radiation inputs.
func NewBirdModelBlock() *gonml.Block {
	return gonml.NewBlock(Kind, "bird_model",
		gonml.NewParam("AP", gonml.KindFloat).WithUnits("hPa"),
		gonml.NewParam("Oz", gonml.KindFloat).WithUnits("atm-cm"),
		gonml.NewParam("WatVap", gonml.KindFloat).WithUnits("atm-cm"),
		gonml.NewParam("AOD500", gonml.KindFloat),
		gonml.NewParam("AOD380", gonml.KindFloat),
		gonml.NewParam("Albedo", gonml.KindFloat),
	)
}

// sedimentZoneLists are the per-zone lists counted by n_zones.
var sedimentZoneLists = []string{
	"zone_heights", "sed_temp_mean", "sed_temp_amplitude",
	"sed_temp_peak_doy", "sed_reflectivity", "sed_roughness",
}

// NewSedimentBlock declares &sediment. benthic_mode 2 and 3 enable zoned
// sediment and require the zone lists to match n_zones exactly; otherwise
// the lists are optional but must still agree with n_zones when given.
func NewSedimentBlock() *gonml.Block {
	zonedOnly := []any{2, 3}
	strict := make([]gonml.BlockRule, 0, len(sedimentZoneLists))
	relaxed := make([]gonml.BlockRule, 0, len(sedimentZoneLists))
	for _, list := range sedimentZoneLists {
		strict = append(strict, rules.LenMatch("n_zones", list, false))
		relaxed = append(relaxed, rules.LenMatch("n_zones", list, true))
	}
	return gonml.NewBlock(Kind, "sediment",
		gonml.NewParam("sed_heat_Ksoil", gonml.KindFloat),
		gonml.NewParam("sed_temp_depth", gonml.KindFloat),
		gonml.NewParam("sed_temp_mean", gonml.KindFloat).List().WithUnits("°C"),
		gonml.NewParam("sed_temp_amplitude", gonml.KindFloat).List().WithUnits("°C"),
		gonml.NewParam("sed_temp_peak_doy", gonml.KindInt).List(),
		gonml.NewParam("benthic_mode", gonml.KindInt).Switch(0, 1, 2, 3),
		gonml.NewParam("n_zones", gonml.KindInt).GTE(0),
		gonml.NewParam("zone_heights", gonml.KindFloat).List(),
		gonml.NewParam("sed_reflectivity", gonml.KindFloat).List(),
		gonml.NewParam("sed_roughness", gonml.KindFloat).List(),
	).WithRules(
		rules.IncompatibleIn("benthic_mode", zonedOnly, "zone_heights", nil),
		rules.IncompatibleIn("benthic_mode", zonedOnly, "n_zones", nil),
		rules.WhenIn("benthic_mode", zonedOnly, strict...),
		unlessIn("benthic_mode", zonedOnly, whenSet("n_zones", relaxed...)),
	)
}

// NewSnowIceBlock declares &snowice.
func NewSnowIceBlock() *gonml.Block {
	return gonml.NewBlock(Kind, "snowice",
		gonml.NewParam("snow_albedo_factor", gonml.KindFloat),
		gonml.NewParam("snow_rho_max", gonml.KindFloat).WithUnits("kg m^{-3}"),
		gonml.NewParam("snow_rho_min", gonml.KindFloat).WithUnits("kg m^{-3}"),
	)
}

// NewMeteorologyBlock declares &meteorology. fetch_mode 1 needs Aws, 2
// needs Xws, and 2/3 need the directional fetch lists sized by num_dir.
func NewMeteorologyBlock() *gonml.Block {
	directional := []any{2, 3}
	return gonml.NewBlock(Kind, "meteorology",
		gonml.NewParam("met_sw", gonml.KindBool),
		gonml.NewParam("meteo_fl", gonml.KindString),
		gonml.NewParam("subdaily", gonml.KindBool),
		gonml.NewParam("time_fmt", gonml.KindString),
		gonml.NewParam("rad_mode", gonml.KindInt).Switch(1, 2, 3, 4, 5),
		gonml.NewParam("albedo_mode", gonml.KindInt).Switch(1, 2, 3),
		gonml.NewParam("sw_factor", gonml.KindFloat),
		gonml.NewParam("lw_type", gonml.KindString).Switch("LW_IN", "LW_NET", "LW_CC"),
		gonml.NewParam("cloud_mode", gonml.KindInt).Switch(1, 2, 3, 4),
		gonml.NewParam("lw_factor", gonml.KindFloat),
		gonml.NewParam("atm_stab", gonml.KindInt).Switch(0, 1, 2),
		gonml.NewParam("rh_factor", gonml.KindFloat),
		gonml.NewParam("at_factor", gonml.KindFloat),
		gonml.NewParam("ce", gonml.KindFloat),
		gonml.NewParam("ch", gonml.KindFloat),
		gonml.NewParam("rain_sw", gonml.KindBool),
		gonml.NewParam("rain_factor", gonml.KindFloat),
		gonml.NewParam("catchrain", gonml.KindBool),
		gonml.NewParam("rain_threshold", gonml.KindFloat).WithUnits("m").GTE(0),
		gonml.NewParam("runoff_coef", gonml.KindFloat),
		gonml.NewParam("cd", gonml.KindFloat),
		gonml.NewParam("wind_factor", gonml.KindFloat),
		gonml.NewParam("fetch_mode", gonml.KindInt).Switch(0, 1, 2, 3),
		gonml.NewParam("Aws", gonml.KindFloat),
		gonml.NewParam("Xws", gonml.KindFloat),
		gonml.NewParam("num_dir", gonml.KindInt).GTE(0),
		gonml.NewParam("wind_dir", gonml.KindFloat).List(),
		gonml.NewParam("fetch_scale", gonml.KindFloat).List(),
	).WithRules(
		rules.Incompatible("fetch_mode", 1, "Aws", nil),
		rules.Incompatible("fetch_mode", 2, "Xws", nil),
		rules.IncompatibleIn("fetch_mode", directional, "num_dir", nil),
		rules.IncompatibleIn("fetch_mode", directional, "wind_dir", nil),
		rules.IncompatibleIn("fetch_mode", directional, "fetch_scale", nil),
		rules.WhenIn("fetch_mode", directional,
			rules.LenMatch("num_dir", "wind_dir", false),
			rules.LenMatch("num_dir", "fetch_scale", false),
		),
	)
}

// inflowLists are the per-stream lists counted by num_inflows.
var inflowLists = []string{
	"names_of_strms", "subm_flag", "subm_elev", "strm_hf_angle",
	"strmbd_slope", "strmbd_drag", "coef_inf_entrain", "inflow_factor",
	"inflow_fl",
}

// NewInflowBlock declares &inflow.
func NewInflowBlock() *gonml.Block {
	blockRules := make([]gonml.BlockRule, 0, len(inflowLists)+1)
	for _, list := range inflowLists {
		blockRules = append(blockRules, rules.LenMatch("num_inflows", list, true))
	}
	blockRules = append(blockRules, rules.LenMatch("inflow_varnum", "inflow_vars", true))
	return gonml.NewBlock(Kind, "inflow",
		gonml.NewParam("num_inflows", gonml.KindInt).GTE(0),
		gonml.NewParam("names_of_strms", gonml.KindString).List(),
		gonml.NewParam("subm_flag", gonml.KindBool).List(),
		gonml.NewParam("subm_elev", gonml.KindFloat).List(),
		gonml.NewParam("strm_hf_angle", gonml.KindFloat).List(),
		gonml.NewParam("strmbd_slope", gonml.KindFloat).List(),
		gonml.NewParam("strmbd_drag", gonml.KindFloat).List(),
		gonml.NewParam("coef_inf_entrain", gonml.KindFloat).List(),
		gonml.NewParam("inflow_factor", gonml.KindFloat).List(),
		gonml.NewParam("inflow_fl", gonml.KindString).List(),
		gonml.NewParam("inflow_varnum", gonml.KindInt).GTE(0),
		gonml.NewParam("inflow_vars", gonml.KindString).List(),
		gonml.NewParam("time_fmt", gonml.KindString),
	).WithRules(blockRules...)
}

// outflowLists are the per-outlet lists counted by num_outlet.
var outflowLists = []string{
	"outflow_fl", "outflow_factor", "outflow_thick_limit",
	"single_layer_draw", "flt_off_sw", "outl_elvs", "bsn_len_outl",
	"bsn_wid_outl",
}

// NewOutflowBlock declares &outflow. outlet_type 5 draws at a temperature
// read from withdrTemp_fl.
func NewOutflowBlock() *gonml.Block {
	blockRules := make([]gonml.BlockRule, 0, len(outflowLists)+1)
	for _, list := range outflowLists {
		blockRules = append(blockRules, rules.LenMatch("num_outlet", list, true))
	}
	blockRules = append(blockRules, rules.Incompatible("outlet_type", 5, "withdrTemp_fl", nil))
	return gonml.NewBlock(Kind, "outflow",
		gonml.NewParam("num_outlet", gonml.KindInt).GTE(0),
		gonml.NewParam("outflow_fl", gonml.KindString).List(),
		gonml.NewParam("time_fmt", gonml.KindString),
		gonml.NewParam("outflow_factor", gonml.KindFloat).List(),
		gonml.NewParam("outflow_thick_limit", gonml.KindFloat).List(),
		gonml.NewParam("single_layer_draw", gonml.KindBool).List(),
		gonml.NewParam("flt_off_sw", gonml.KindBool).List(),
		gonml.NewParam("outlet_type", gonml.KindInt).Switch(1, 2, 3, 4, 5),
		gonml.NewParam("outl_elvs", gonml.KindFloat).List().WithUnits("m"),
		gonml.NewParam("bsn_len_outl", gonml.KindFloat).List().WithUnits("m").GTE(0),
		gonml.NewParam("bsn_wid_outl", gonml.KindFloat).List().WithUnits("m").GTE(0),
		gonml.NewParam("crit_O2", gonml.KindInt),
		gonml.NewParam("crit_O2_dep", gonml.KindInt),
		gonml.NewParam("crit_O2_days", gonml.KindInt),
		gonml.NewParam("outlet_crit", gonml.KindInt),
		gonml.NewParam("O2name", gonml.KindString),
		gonml.NewParam("O2idx", gonml.KindString),
		gonml.NewParam("target_temp", gonml.KindFloat),
		gonml.NewParam("min_lake_temp", gonml.KindFloat),
		gonml.NewParam("fac_range_upper", gonml.KindFloat),
		gonml.NewParam("fac_range_lower", gonml.KindFloat),
		gonml.NewParam("mix_withdraw", gonml.KindBool),
		gonml.NewParam("coupl_oxy_sw", gonml.KindBool),
		gonml.NewParam("withdrTemp_fl", gonml.KindString),
		gonml.NewParam("seepage", gonml.KindBool),
		gonml.NewParam("seepage_rate", gonml.KindFloat).WithUnits("m day^{-1}"),
		gonml.NewParam("crest_width", gonml.KindFloat).WithUnits("m"),
		gonml.NewParam("crest_factor", gonml.KindFloat),
	).WithRules(blockRules...)
}

// whenSet gates sub-rules on a parameter being set at all.
func whenSet(param string, sub ...gonml.BlockRule) gonml.BlockRule {
	return func(b *gonml.Block) *gonml.Issue {
		if b.Value(param) == nil {
			return nil
		}
		for _, r := range sub {
			if it := r(b); it != nil {
				return it
			}
		}
		return nil
	}
}

// unlessIn gates sub-rules on a parameter NOT holding one of the given
// values (unset also passes the gate).
func unlessIn(param string, wants []any, sub ...gonml.BlockRule) gonml.BlockRule {
	return func(b *gonml.Block) *gonml.Issue {
		v := b.Value(param)
		for _, w := range wants {
			if v == w {
				return nil
			}
		}
		for _, r := range sub {
			if it := r(b); it != nil {
				return it
			}
		}
		return nil
	}
}
