package keyword

// Statement pragmas.
const (
	Cpu                     = "cpu"
	Config                  = "config"
	Acp                     = "port"
	Csim                    = "csim"
	CsimHeader              = "csim_header"
	AclMiscellaneousSetting = "acl_miscellaneous_setting"
	TestPattern             = "test_pattern"
	Resource                = "resource"
	InsnGroup               = "insn_group"
	Sync                    = "sync"
	Status                  = "status"
)

// Statement pragmas that have more than one spelling.
var (
	AcrAliases                   = []string{"register", "reg"}
	AcmAliases                   = []string{"ram", "rom"}
	InstructionAliases           = []string{"instruction", "insn"}
	BackgroundInstructionAliases = []string{"background_instruction", "bg_insn"}
	VectorAliases                = []string{"vector", "vec"}
	UtilityInstructionAliases    = []string{"utility_instruction", "u_insn"}
	RvvInstructionAliases        = []string{"rvv_instruction", "rvv_insn"}
	TestSequenceAliases          = []string{"test_sequence", "test_seq"}
	TestbenchSequenceAliases     = []string{"testbench_sequence", "testbench_seq", "tb_seq"}
)

// Statements is every statement pragma in completion order.
var Statements = concat(
	[]string{Cpu, Config},
	AcrAliases,
	AcmAliases,
	[]string{Acp, Csim, CsimHeader},
	InstructionAliases,
	BackgroundInstructionAliases,
	VectorAliases,
	UtilityInstructionAliases,
	RvvInstructionAliases,
	[]string{AclMiscellaneousSetting, TestPattern},
	TestSequenceAliases,
	[]string{Resource},
	TestbenchSequenceAliases,
	[]string{InsnGroup, Sync, Status},
)

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
