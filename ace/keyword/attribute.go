package keyword

// Attribute pragmas understood by the parser.
const (
	AttrName         = "name"
	AttrVlen         = "vlen"
	AttrTimeoutCycle = "timeout_cycle"
)

// Attributes is every attribute pragma of the language in completion order,
// including the ones the parser does not build nodes for yet.
var Attributes = concat(
	[]string{
		AttrName, AttrVlen, "dlen", "elen", "flen", "felen",
		"streaming_port_width", "address_bits", "endian",
	},
	[]string{"optimization_policy", "opt_policy"},
	[]string{
		"lm_latency", "bus_latency",
		"export_level_ahb", "export_level_axi", "export_level_sram",
		"export_level_port", "export_level_streaming_port",
	},
	[]string{"rf_buffer", "rf_buf"},
	[]string{
		"gpr_buffer", "custom_error_bits", "custom_error_en", "insn_queue",
		"group_in_buffer", "group_out_buffer", AttrTimeoutCycle, "error_pc",
		"insn_encode", "clock_domain_crossing_stage", "rvv_custom_kill", "width",
	},
	[]string{"number", "num"},
	[]string{"utility", "util"},
	[]string{"reset", "reset_default"},
	[]string{"privilege", "priv"},
	[]string{
		"access_type", "llvm_ra", "interface", "latency", "content",
		"content_default", "error_detect",
	},
	[]string{"byte_enable", "be"},
	[]string{"write_strobe", "max_burst_length", "export_level", "io_type"},
	[]string{"buffer", "buf"},
	[]string{"csim", "chisel", "spinalhdl", "misc_setting"},
	[]string{"operand", "op"},
	[]string{"implied_operand", "implied_op"},
	[]string{"csr_operand", "csr_op"},
	[]string{
		"extra_decoding_type_signal", "streaming_port", "side_effect",
		"csim_cycle", "chisel_cycle", "spinalhdl_cycle", "blocking",
		"interrupt", "outstanding_insn_num", "utility_kind", "test_pattern",
		"throughput",
	},
	[]string{"cycle_per_result", "cpr"},
	[]string{"vector_mask", "vector_unit", "custom_kill", "instantiate"},
	[]string{"test_sequence_init", "test_seq_init"},
	[]string{"sequence", "seq"},
	[]string{"list", "latency_overhead"},
	[]string{"csim_initialization", "csim_init"},
	[]string{"chisel_initialization", "chisel_init"},
	[]string{"spinalhdl_initialization", "spinalhdl_init"},
	[]string{"loop_type", "stride", "base_opcode", "march", "frf_buffer"},
)
